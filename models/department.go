package models

type EmployeeEntry struct {
	Name   string
	Hours  int
	Rate   int
	Payout int
}

func NewEmployeeEntry(name string, hours int, rate int) EmployeeEntry {
	return EmployeeEntry{
		Name:   name,
		Hours:  hours,
		Rate:   rate,
		Payout: hours * rate,
	}
}

type Department struct {
	Name        string
	Employees   []EmployeeEntry
	TotalHours  int
	TotalPayout int
}

func (d *Department) Add(entry EmployeeEntry) {
	d.Employees = append(d.Employees, entry)
	d.TotalHours += entry.Hours
	d.TotalPayout += entry.Payout
}

// Departments keeps department buckets in the order they were first seen.
type Departments struct {
	order  []*Department
	byName map[string]*Department
}

func NewDepartments() *Departments {
	return &Departments{
		byName: make(map[string]*Department),
	}
}

func (d *Departments) Add(department string, entry EmployeeEntry) {
	bucket, found := d.byName[department]
	if !found {
		bucket = &Department{Name: department}
		d.byName[department] = bucket
		d.order = append(d.order, bucket)
	}

	bucket.Add(entry)
}

func (d *Departments) Get(department string) (*Department, bool) {
	bucket, found := d.byName[department]
	return bucket, found
}

func (d *Departments) List() []*Department {
	return d.order
}

func (d *Departments) Len() int {
	return len(d.order)
}
