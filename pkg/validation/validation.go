package validation

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Kind identifies one spec variant.
type Kind string

const (
	KindCluster    Kind = "PulsarCluster"
	KindZooKeeper  Kind = "ZooKeeper"
	KindBookKeeper Kind = "BookKeeper"
	KindBroker     Kind = "Broker"
	KindProxy      Kind = "Proxy"
)

// Result is the outcome of validating one spec. The zero value is valid.
type Result struct {
	Violations field.ErrorList
}

// Valid reports whether no violation was found.
func (r Result) Valid() bool { return len(r.Violations) == 0 }

// Messages renders each violation on its own line item.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, Message(v))
	}
	return out
}

// Error joins every violation message with a newline, or returns "" when valid.
func (r Result) Error() string {
	return strings.Join(r.Messages(), "\n")
}

// Message formats a single violation with its field path, value and reason.
func Message(v *field.Error) string {
	return fmt.Sprintf("invalid configuration property %q for value %q: %s", v.Field, fmt.Sprint(v.BadValue), v.Detail)
}

// Validate runs the validator registered for kind. spec must be the resolved
// spec type of that kind; a mismatch is reported as a violation.
func Validate(kind Kind, spec any) Result {
	fn, ok := validators[kind]
	if !ok {
		return newResult(field.ErrorList{field.NotSupported(field.NewPath("kind"), string(kind), supportedKinds())})
	}
	return newResult(fn(spec))
}

func newResult(errs field.ErrorList) Result {
	if len(errs) == 0 {
		return Result{}
	}
	sorted := slices.Clone(errs)
	slices.SortFunc(sorted, func(a, b *field.Error) int {
		return cmp.Or(
			cmp.Compare(a.Field, b.Field),
			cmp.Compare(a.Detail, b.Detail),
			cmp.Compare(fmt.Sprint(a.BadValue), fmt.Sprint(b.BadValue)),
		)
	})
	return Result{Violations: sorted}
}

func supportedKinds() []string {
	kinds := make([]string, 0, len(validators))
	for k := range validators {
		kinds = append(kinds, string(k))
	}
	slices.Sort(kinds)
	return kinds
}
