package reconcile

import (
	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/monitoring"
)

// Phase is one state of the reconcile state machine.
type Phase string

const (
	PhaseResolving     Phase = "Resolving"
	PhaseValidating    Phase = "Validating"
	PhaseInvalid       Phase = "Invalid"
	PhaseSynchronizing Phase = "Synchronizing"
	PhaseReady         Phase = "Ready"
	PhaseFailed        Phase = "Failed"
)

// Outcome is the result of one cycle: the phase it stopped in and the status
// to write back.
type Outcome struct {
	Phase  Phase
	Status pulsarv1alpha1.ComponentStatus
	// Err is the synchronization failure when Phase is PhaseFailed.
	Err error
}

func (o Outcome) metricLabel() string {
	switch o.Phase {
	case PhaseReady:
		return monitoring.OutcomeReady
	case PhaseInvalid:
		return monitoring.OutcomeInvalid
	default:
		return monitoring.OutcomeFailed
	}
}
