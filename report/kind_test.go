package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jiaming2012/payout-report/models"
	"jiaming2012/payout-report/payroll"
)

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("payout")
	require.NoError(t, err)
	assert.Equal(t, Payout, kind)

	_, err = ParseKind("overtime")
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), `"overtime"`)
	assert.Contains(t, err.Error(), "payout")
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []Kind{Payout}, Kinds())
}

func TestKindFlagValue(t *testing.T) {
	var kind Kind

	require.NoError(t, kind.Set("payout"))
	assert.Equal(t, "payout", kind.String())
	assert.Equal(t, "report", kind.Type())

	assert.ErrorIs(t, kind.Set("bogus"), ErrUnknownKind)
	assert.Equal(t, Payout, kind)
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := Generate(Kind("bogus"), sampleRecords())
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestGeneratePayout(t *testing.T) {
	out, err := Generate(Payout, sampleRecords())
	require.NoError(t, err)

	text, err := GeneratePayoutReport(sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, text, out.Text)

	require.Len(t, out.Entries, 3)
	assert.Equal(t, payroll.Entry{Department: "Marketing", Name: "Alice", Hours: 160, Rate: 50, Payout: 8000}, out.Entries[0])
	assert.Equal(t, "Carol", out.Entries[2].Name)
}

func TestGeneratePayoutMalformedRecord(t *testing.T) {
	records := append(sampleRecords(), models.Record{"name": "Dan", "department": "Design"})

	out, err := Generate(Payout, records)
	require.ErrorIs(t, err, models.ErrMissingField)
	assert.Empty(t, out.Text)
	assert.Nil(t, out.Entries)
}
