package payroll

import (
	"io"

	"github.com/gocarina/gocsv"

	"jiaming2012/payout-report/models"
)

// Entry is one exported payout line. The csv tags reuse the input field names
// so an export can be fed back into the loader.
type Entry struct {
	Department string `csv:"department"`
	Name       string `csv:"name"`
	Hours      int    `csv:"hours_worked"`
	Rate       int    `csv:"hourly_rate"`
	Payout     int    `csv:"payout"`
}

type Entries []Entry

func NewEntries(departments *models.Departments) Entries {
	var entries Entries

	for _, department := range departments.List() {
		for _, employee := range department.Employees {
			entries = append(entries, Entry{
				Department: department.Name,
				Name:       employee.Name,
				Hours:      employee.Hours,
				Rate:       employee.Rate,
				Payout:     employee.Payout,
			})
		}
	}

	return entries
}

func (entries Entries) ToCSV(w io.Writer) error {
	return gocsv.Marshal(entries, w)
}
