package autoscaler

import (
	"fmt"
	"time"

	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
	"github.com/numtide/pulsar-operator/pkg/resolver"
)

// BrokerStat is one broker pod's CPU usage and request at sampling time.
type BrokerStat struct {
	Pod               string
	UsedMilliCPU      int64
	RequestedMilliCPU int64
}

// Utilization is usage over request. RequestedMilliCPU is never zero for a
// stat built by Collect.
func (s BrokerStat) Utilization() float64 {
	return float64(s.UsedMilliCPU) / float64(s.RequestedMilliCPU)
}

// Class is the load classification of one pod.
type Class int

const (
	ClassStable Class = iota
	ClassLow
	ClassHigh
)

func (c Class) String() string {
	switch c {
	case ClassLow:
		return "low"
	case ClassHigh:
		return "high"
	default:
		return "stable"
	}
}

// Action is what a cycle decided to do.
type Action int

const (
	NoAction Action = iota
	ScaleUp
	ScaleDown
)

func (a Action) String() string {
	switch a {
	case ScaleUp:
		return "scale_up"
	case ScaleDown:
		return "scale_down"
	default:
		return "no_action"
	}
}

// Decision is the outcome of a cycle. To is the target replica count and is
// only meaningful when Action is not NoAction.
type Decision struct {
	Action Action
	From   int32
	To     int32
	Reason string
}

func noAction(current int32, reason string) Decision {
	return Decision{Action: NoAction, From: current, To: current, Reason: reason}
}

// Policy is the resolved autoscaler configuration of one broker set.
type Policy struct {
	Enabled            bool
	Period             time.Duration
	LowerCPUThreshold  float64
	HigherCPUThreshold float64
	ScaleUpBy          int32
	ScaleDownBy        int32
	Min                *int32
	Max                *int32
}

// PolicyFor converts a broker autoscaler spec into a Policy, filling any unset
// field with its default.
func PolicyFor(spec *pulsarv1alpha1.BrokerAutoscalerSpec) Policy {
	r := resolver.ResolveAutoscaler(spec)
	return Policy{
		Enabled:            ptr.Deref(r.Enabled, false),
		Period:             time.Duration(ptr.Deref(r.PeriodMs, resolver.DefaultAutoscalerPeriodMs)) * time.Millisecond,
		LowerCPUThreshold:  ptr.Deref(r.LowerCPUThreshold, resolver.DefaultLowerCPUThreshold),
		HigherCPUThreshold: ptr.Deref(r.HigherCPUThreshold, resolver.DefaultHigherCPUThreshold),
		ScaleUpBy:          ptr.Deref(r.ScaleUpBy, resolver.DefaultScaleUpBy),
		ScaleDownBy:        ptr.Deref(r.ScaleDownBy, resolver.DefaultScaleDownBy),
		Min:                r.Min,
		Max:                r.Max,
	}
}

// Classify places a utilization relative to the thresholds. Both bounds are
// exclusive: a pod exactly on a threshold is stable.
func Classify(utilization, lower, higher float64) Class {
	switch {
	case utilization < lower:
		return ClassLow
	case utilization > higher:
		return ClassHigh
	default:
		return ClassStable
	}
}

// Tally returns the fleet vote. It scales only when every class agrees on the
// same non-stable direction; no classes at all is no action.
func Tally(classes []Class) Action {
	vote := NoAction
	for i, c := range classes {
		var want Action
		switch c {
		case ClassLow:
			want = ScaleDown
		case ClassHigh:
			want = ScaleUp
		default:
			return NoAction
		}
		if i > 0 && want != vote {
			return NoAction
		}
		vote = want
	}
	return vote
}

// Clamp turns a vote into a decision, rejecting a candidate that is not
// positive, is below Min or is above Max. The floors are checked separately.
func Clamp(current int32, vote Action, p Policy) Decision {
	var candidate int32
	switch vote {
	case ScaleUp:
		candidate = current + p.ScaleUpBy
	case ScaleDown:
		candidate = current - p.ScaleDownBy
	default:
		return noAction(current, "system is stable")
	}

	switch {
	case candidate <= 0:
		return noAction(current, fmt.Sprintf("candidate %d leaves no brokers (current %d, scaleDownBy %d)", candidate, current, p.ScaleDownBy))
	case p.Min != nil && candidate < *p.Min:
		return noAction(current, fmt.Sprintf("candidate %d is below min %d (current %d, scaleDownBy %d)", candidate, *p.Min, current, p.ScaleDownBy))
	case p.Max != nil && candidate > *p.Max:
		return noAction(current, fmt.Sprintf("candidate %d is above max %d (current %d, scaleUpBy %d)", candidate, *p.Max, current, p.ScaleUpBy))
	}
	return Decision{Action: vote, From: current, To: candidate, Reason: fmt.Sprintf("all %s", vote)}
}

// Decide classifies every stat, tallies the vote and clamps the result.
func Decide(current int32, stats []BrokerStat, p Policy) Decision {
	if len(stats) == 0 {
		return noAction(current, "no broker pod reported usable CPU data")
	}
	classes := make([]Class, 0, len(stats))
	for _, s := range stats {
		classes = append(classes, Classify(s.Utilization(), p.LowerCPUThreshold, p.HigherCPUThreshold))
	}
	d := Clamp(current, Tally(classes), p)
	if d.Action != NoAction {
		d.Reason = fmt.Sprintf("all %d pods voted %s", len(stats), d.Action)
	}
	return d
}
