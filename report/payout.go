package report

import (
	"fmt"
	"strings"

	"jiaming2012/payout-report/models"
	"jiaming2012/payout-report/payroll"
)

const (
	employeeMarker = "---------"
	currency       = "$"

	headerNameWidth = 11
	nameWidth       = 16
	columnWidth     = 10
	totalsIndent    = 26
)

func headerLine() string {
	return fmt.Sprintf("%-*s %-*s %-*s %s", headerNameWidth, "\t\tname", columnWidth, "hours", columnWidth, "rate", "payout")
}

func employeeLine(e models.EmployeeEntry) string {
	// fmt pads by rune count, the same as str.ljust
	return fmt.Sprintf("%s %-*s %-*d %-*d %s%d", employeeMarker, nameWidth, e.Name, columnWidth, e.Hours, columnWidth, e.Rate, currency, e.Payout)
}

func totalsLine(d *models.Department) string {
	return fmt.Sprintf("%-*s %-*d %-*s %s%d", totalsIndent, "", columnWidth, d.TotalHours, columnWidth, "", currency, d.TotalPayout)
}

func RenderPayout(departments *models.Departments) string {
	lines := []string{headerLine()}

	for _, department := range departments.List() {
		lines = append(lines, department.Name)

		for _, employee := range department.Employees {
			lines = append(lines, employeeLine(employee))
		}

		lines = append(lines, totalsLine(department), "")
	}

	return strings.Join(lines, "\n")
}

func GeneratePayoutReport(records models.Records) (string, error) {
	departments, err := payroll.CalculatePayoutData(records)
	if err != nil {
		return "", err
	}

	return RenderPayout(departments), nil
}

func generatePayout(records models.Records) (Output, error) {
	departments, err := payroll.CalculatePayoutData(records)
	if err != nil {
		return Output{}, err
	}

	return Output{
		Text:    RenderPayout(departments),
		Entries: payroll.NewEntries(departments),
	}, nil
}
