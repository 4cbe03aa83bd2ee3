// Package validation checks resolved Pulsar specs against the operator's
// constraints.
//
// Validators are looked up in a closed table keyed by Kind. Each validator runs
// every check and returns the complete violation set; the set is sorted so the
// outcome does not depend on the order the checks ran in.
//
// Validation must only run on a spec returned by the resolver. A partially
// defaulted spec yields spurious "required" violations.
package validation
