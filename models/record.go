package models

import (
	"errors"
	"fmt"
)

const (
	FieldName        = "name"
	FieldDepartment  = "department"
	FieldHoursWorked = "hours_worked"
	FieldHourlyRate  = "hourly_rate"
)

var ErrMissingField = errors.New("missing field")

// Record is one input row: header field name -> raw value.
type Record map[string]string

type Records []Record

func (r Record) Get(field string) (string, error) {
	val, ok := r[field]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingField, field)
	}

	return val, nil
}
