// Package rollover schedules the overdue-task sweep: once eagerly at
// process start to correct drift accumulated while the process was down,
// then on a cron schedule. A failed sweep is logged and retried on the
// next tick; it never crashes the process.
package rollover

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-monolith/mono"
	"github.com/robfig/cron/v3"

	"github.com/example/taskboard/modules/task"
)

// DefaultSchedule runs the sweep daily at 02:00.
const DefaultSchedule = "0 2 * * *"

// Module drives the rollover sweep on a schedule.
type Module struct {
	taskModule *task.Module
	schedule   string
	timezone   string
	cron       *cron.Cron
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new rollover module. Schedule and timezone come from
// ROLLOVER_CRON and ROLLOVER_TZ.
func NewModule(taskModule *task.Module) *Module {
	schedule := os.Getenv("ROLLOVER_CRON")
	if schedule == "" {
		schedule = DefaultSchedule
	}
	timezone := os.Getenv("ROLLOVER_TZ")
	if timezone == "" {
		timezone = "UTC"
	}
	return &Module{
		taskModule: taskModule,
		schedule:   schedule,
		timezone:   timezone,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "rollover"
}

// Start runs an eager sweep and begins the cron schedule.
func (m *Module) Start(_ context.Context) error {
	loc, err := time.LoadLocation(m.timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", m.timezone, err)
	}

	m.cron = cron.New(cron.WithLocation(loc))
	if _, err := m.cron.AddFunc(m.schedule, m.runSweep); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", m.schedule, err)
	}

	// Correct drift accumulated while the process was down before the
	// first scheduled tick.
	go m.runSweep()

	m.cron.Start()
	log.Printf("[rollover] Module started, schedule %q in %s", m.schedule, m.timezone)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (m *Module) Stop(ctx context.Context) error {
	if m.cron == nil {
		return nil
	}

	done := m.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Println("[rollover] Module stopped")
	return nil
}

// Health reports the schedule configuration.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.cron != nil,
		Message: "operational",
		Details: map[string]any{
			"schedule": m.schedule,
			"timezone": m.timezone,
		},
	}
}

// runSweep executes one sweep against the current clock. Failures are
// logged and left for the next scheduled tick.
func (m *Module) runSweep() {
	moved, err := m.taskModule.Service().Rollover(time.Time{}, "")
	if err != nil {
		log.Printf("[rollover] Sweep failed, will retry on next tick: %v", err)
		return
	}
	if len(moved) > 0 {
		log.Printf("[rollover] Rolled %d overdue task(s) over to today", len(moved))
	}
}
