// Package autoscaler sizes the broker fleet of a Pulsar cluster from observed
// CPU utilization.
//
// One cycle runs strictly in order:
//
//	gate -> collect -> classify -> vote -> clamp -> apply
//
// The gate refuses to act on a fleet that is still converging: every broker
// pod must exist, be ready and be older than the grace period. Each measured
// pod is then classified low, stable or high against the configured
// thresholds, and the fleet scales only when every pod agrees on the same
// direction. A single stable pod, or a mix of low and high, cancels the cycle.
// The candidate replica count must stay positive and within the optional
// min/max bounds.
//
// Classification, voting and clamping are pure functions over BrokerStat
// values (see Decide). The Autoscaler performs the I/O around them, and the
// only write it ever issues is a patch of the Broker resource's replica count.
// Skipped cycles are logged, never reported on the resource status.
//
// Scheduler runs one periodic cycle per Pulsar cluster that enables
// autoscaling and is added to the controller manager as a Runnable.
package autoscaler
