package payroll

import (
	"fmt"
	"strconv"
	"strings"

	"jiaming2012/payout-report/models"
)

func parseInt(record models.Record, field string) (int, error) {
	raw, err := record.Get(field)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to convert %s=%q to int: %w", field, raw, err)
	}

	return val, nil
}

// CalculatePayoutData groups records by department, in first-seen order.
func CalculatePayoutData(records models.Records) (*models.Departments, error) {
	departments := models.NewDepartments()

	for i, record := range records {
		department, err := record.Get(models.FieldDepartment)
		if err != nil {
			return nil, fmt.Errorf("CalculatePayoutData::record %d: %w", i+1, err)
		}

		name, err := record.Get(models.FieldName)
		if err != nil {
			return nil, fmt.Errorf("CalculatePayoutData::record %d: %w", i+1, err)
		}

		hours, err := parseInt(record, models.FieldHoursWorked)
		if err != nil {
			return nil, fmt.Errorf("CalculatePayoutData::record %d: %w", i+1, err)
		}

		rate, err := parseInt(record, models.FieldHourlyRate)
		if err != nil {
			return nil, fmt.Errorf("CalculatePayoutData::record %d: %w", i+1, err)
		}

		departments.Add(department, models.NewEmployeeEntry(name, hours, rate))
	}

	return departments, nil
}
