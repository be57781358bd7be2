package payroll

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jiaming2012/payout-report/models"
)

func sampleRecords() models.Records {
	return models.Records{
		{"name": "Alice", "department": "Marketing", "hours_worked": "160", "hourly_rate": "50"},
		{"name": "Bob", "department": "Design", "hours_worked": "150", "hourly_rate": "40"},
		{"name": "Carol", "department": "Design", "hours_worked": "170", "hourly_rate": "60"},
	}
}

func TestCalculatePayoutData(t *testing.T) {
	departments, err := CalculatePayoutData(sampleRecords())
	require.NoError(t, err)

	marketing, found := departments.Get("Marketing")
	require.True(t, found)
	assert.Len(t, marketing.Employees, 1)
	assert.Equal(t, 160, marketing.TotalHours)
	assert.Equal(t, 8000, marketing.TotalPayout)

	design, found := departments.Get("Design")
	require.True(t, found)
	assert.Len(t, design.Employees, 2)
	assert.Equal(t, 320, design.TotalHours)
	assert.Equal(t, 16200, design.TotalPayout)

	assert.Equal(t, "Marketing", departments.List()[0].Name)
	assert.Equal(t, "Design", departments.List()[1].Name)
}

func TestCalculatePayoutDataIsDeterministic(t *testing.T) {
	first, err := CalculatePayoutData(sampleRecords())
	require.NoError(t, err)
	second, err := CalculatePayoutData(sampleRecords())
	require.NoError(t, err)

	assert.Equal(t, first.List(), second.List())
}

func TestCalculatePayoutDataEmpty(t *testing.T) {
	departments, err := CalculatePayoutData(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, departments.Len())
}

func TestCalculatePayoutDataTrimsNumbers(t *testing.T) {
	departments, err := CalculatePayoutData(models.Records{
		{"name": "Dave", "department": "Ops", "hours_worked": " 8 ", "hourly_rate": "25"},
	})
	require.NoError(t, err)

	ops, _ := departments.Get("Ops")
	assert.Equal(t, 200, ops.TotalPayout)
}

func TestCalculatePayoutDataErrors(t *testing.T) {
	tests := []struct {
		name    string
		record  models.Record
		wantErr error
	}{
		{
			name:    "non-integer hours",
			record:  models.Record{"name": "Eve", "department": "Ops", "hours_worked": "forty", "hourly_rate": "20"},
			wantErr: strconv.ErrSyntax,
		},
		{
			name:    "decimal rate",
			record:  models.Record{"name": "Eve", "department": "Ops", "hours_worked": "40", "hourly_rate": "20.5"},
			wantErr: strconv.ErrSyntax,
		},
		{
			name:    "empty hours",
			record:  models.Record{"name": "Eve", "department": "Ops", "hours_worked": "", "hourly_rate": "20"},
			wantErr: strconv.ErrSyntax,
		},
		{
			name:    "missing rate",
			record:  models.Record{"name": "Eve", "department": "Ops", "hours_worked": "40"},
			wantErr: models.ErrMissingField,
		},
		{
			name:    "missing department",
			record:  models.Record{"name": "Eve", "hours_worked": "40", "hourly_rate": "20"},
			wantErr: models.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := append(sampleRecords(), tt.record)

			departments, err := CalculatePayoutData(records)
			assert.Nil(t, departments)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "record 4")
		})
	}
}
