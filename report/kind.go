package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"jiaming2012/payout-report/models"
	"jiaming2012/payout-report/payroll"
)

var ErrUnknownKind = errors.New("unknown report type")

type Kind string

const (
	Payout Kind = "payout"
)

// Output is what a generator produces: the rendered text and, when the kind
// has them, the per-employee entries behind it for the csv export.
type Output struct {
	Text    string
	Entries payroll.Entries
}

type Generator func(records models.Records) (Output, error)

var generators = map[Kind]Generator{
	Payout: generatePayout,
}

func Kinds() []Kind {
	kinds := make([]Kind, 0, len(generators))
	for kind := range generators {
		kinds = append(kinds, kind)
	}

	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i] < kinds[j]
	})

	return kinds
}

func ParseKind(name string) (Kind, error) {
	kind := Kind(name)
	if _, found := generators[kind]; !found {
		return "", fmt.Errorf("%w %q (choose from %s)", ErrUnknownKind, name, kindList())
	}

	return kind, nil
}

func kindList() string {
	var names []string
	for _, kind := range Kinds() {
		names = append(names, string(kind))
	}

	return strings.Join(names, ", ")
}

func Generate(kind Kind, records models.Records) (Output, error) {
	generate, found := generators[kind]
	if !found {
		return Output{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	return generate(records)
}

func (k Kind) String() string {
	return string(k)
}

// Set and Type let a *Kind be used directly as a command-line flag value.
func (k *Kind) Set(name string) error {
	kind, err := ParseKind(name)
	if err != nil {
		return err
	}

	*k = kind
	return nil
}

func (k *Kind) Type() string {
	return "report"
}
