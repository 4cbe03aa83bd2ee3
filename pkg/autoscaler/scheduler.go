package autoscaler

import (
	"context"
	"errors"
	"sync"
	"time"

	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/manager"

	"github.com/numtide/pulsar-operator/pkg/monitoring"
)

// ErrSchedulerStopped is returned when work is submitted to a scheduler that
// is shutting down.
var ErrSchedulerStopped = errors.New("autoscaler scheduler is stopped")

// Runner runs one autoscaler cycle for a target.
type Runner interface {
	Run(ctx context.Context, t Target)
}

// Scheduler runs one periodic Runner task per Pulsar cluster.
//
// Tasks scheduled before Start are queued and launched when the manager
// starts the scheduler. Cycles of one cluster never overlap: a replaced or
// unscheduled task finishes its in-flight cycle before the next task of the
// same cluster ticks.
type Scheduler struct {
	runner Runner

	mu      sync.Mutex
	ctx     context.Context
	stopped bool
	tasks   map[types.NamespacedName]*task

	// last holds the done channel of the latest launched task per cluster,
	// until that task exits.
	last map[types.NamespacedName]chan struct{}
	wg   sync.WaitGroup
}

type task struct {
	target Target
	period time.Duration
	cancel context.CancelFunc
}

var (
	_ manager.Runnable               = &Scheduler{}
	_ manager.LeaderElectionRunnable = &Scheduler{}
)

// NewScheduler returns a scheduler that runs r.
func NewScheduler(r Runner) *Scheduler {
	return &Scheduler{
		runner: r,
		tasks:  map[types.NamespacedName]*task{},
		last:   map[types.NamespacedName]chan struct{}{},
	}
}

// Schedule registers, or replaces, the periodic task of the cluster key.
// Re-registering an identical task keeps the running one untouched.
func (s *Scheduler) Schedule(key types.NamespacedName, t Target, period time.Duration) error {
	if period <= 0 {
		return errors.New("autoscaler period must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrSchedulerStopped
	}
	if existing, ok := s.tasks[key]; ok {
		if existing.target == t && existing.period == period {
			return nil
		}
		existing.stop()
	}

	tk := &task{target: t, period: period}
	s.tasks[key] = tk
	if s.ctx != nil {
		s.launch(key, tk)
	}
	return nil
}

// Unschedule stops the task of the cluster key, if any.
func (s *Scheduler) Unschedule(key types.NamespacedName) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tk, ok := s.tasks[key]; ok {
		tk.stop()
		delete(s.tasks, key)
		monitoring.DeleteAutoscaler(tk.target.Cluster, tk.target.Namespace)
	}
}

// Scheduled returns the task registered for key.
func (s *Scheduler) Scheduled(key types.NamespacedName) (Target, time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tk, ok := s.tasks[key]
	if !ok {
		return Target{}, 0, false
	}
	return tk.target, tk.period, true
}

// Start launches every queued task and blocks until ctx is done, then stops
// all tasks and waits for in-flight cycles to return.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.ctx != nil || s.stopped {
		s.mu.Unlock()
		return errors.New("autoscaler scheduler already started")
	}
	s.ctx = ctx
	for key, tk := range s.tasks {
		s.launch(key, tk)
	}
	s.mu.Unlock()

	log.FromContext(ctx).Info("Broker autoscaler scheduler started")
	<-ctx.Done()

	s.mu.Lock()
	s.stopped = true
	for key, tk := range s.tasks {
		tk.stop()
		delete(s.tasks, key)
	}
	s.mu.Unlock()

	s.wg.Wait()
	return nil
}

// NeedLeaderElection makes only the leader scale brokers.
func (s *Scheduler) NeedLeaderElection() bool {
	return true
}

// launch must be called with s.mu held. The task waits for the previous
// task of the same cluster to exit before its first tick.
func (s *Scheduler) launch(key types.NamespacedName, tk *task) {
	ctx, cancel := context.WithCancel(s.ctx)
	tk.cancel = cancel
	ctx = log.IntoContext(ctx, log.FromContext(ctx).WithValues("pulsarcluster", key.String()))

	prev := s.last[key]
	done := make(chan struct{})
	s.last[key] = done

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.release(key, done)
		if prev != nil {
			// The previous task is already canceled.
			<-prev
		}
		wait.UntilWithContext(ctx, func(ctx context.Context) {
			s.runner.Run(ctx, tk.target)
		}, tk.period)
	}()
}

func (s *Scheduler) release(key types.NamespacedName, done chan struct{}) {
	s.mu.Lock()
	if s.last[key] == done {
		delete(s.last, key)
	}
	s.mu.Unlock()
	close(done)
}

func (t *task) stop() {
	if t.cancel != nil {
		t.cancel()
	}
}
