package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/otel"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/run"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/port/assistant"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// DriverConfig bounds the polling loop of a single run.
type DriverConfig struct {
	// PollInterval is the wait between status fetches while the run is
	// queued or in progress.
	PollInterval time.Duration
	// MaxPolls caps the number of status fetches per run.
	MaxPolls int
	// MaxActionCycles caps how many times a run may pause in
	// requires_action before the driver gives up.
	MaxActionCycles int
	// RunDeadline is the wall-clock bound on the whole run.
	RunDeadline time.Duration
	// MaxParallelTools caps concurrent tool executions within one batch.
	MaxParallelTools int
}

// DefaultDriverConfig returns the production bounds.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		PollInterval:     time.Second,
		MaxPolls:         60,
		MaxActionCycles:  8,
		RunDeadline:      2 * time.Minute,
		MaxParallelTools: 4,
	}
}

// Sleeper suspends between polls. It must return early with the context
// error when ctx is cancelled. Tests substitute instant implementations.
type Sleeper func(ctx context.Context, d time.Duration) error

func defaultSleeper(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Driver executes one remote run to a terminal state: it polls while the
// run is active, resolves requires_action pauses through the local tool
// registry, and maps non-success terminal states to errors.
type Driver struct {
	svc     assistant.Service
	tools   *tool.Registry
	cfg     DriverConfig
	sleep   Sleeper
	now     func() time.Time
	metrics *otel.Metrics
}

// NewDriver creates a run driver. metrics may be nil.
func NewDriver(svc assistant.Service, tools *tool.Registry, cfg DriverConfig, metrics *otel.Metrics) *Driver {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.MaxParallelTools <= 0 {
		cfg.MaxParallelTools = 1
	}
	return &Driver{
		svc:     svc,
		tools:   tools,
		cfg:     cfg,
		sleep:   defaultSleeper,
		now:     time.Now,
		metrics: metrics,
	}
}

// SetSleeper replaces the inter-poll wait. Test hook.
func (d *Driver) SetSleeper(s Sleeper) { d.sleep = s }

// SetClock replaces the wall-clock source. Test hook.
func (d *Driver) SetClock(now func() time.Time) { d.now = now }

// Drive creates a run on the thread and carries it to completion. It
// returns the completed run, or an error for timeouts, transport failures
// and non-success terminal states.
func (d *Driver) Drive(ctx context.Context, threadID, assistantID string) (*run.Run, error) {
	started := d.now()

	r, err := d.svc.CreateRun(ctx, threadID, assistantID)
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	ctx, span := otel.StartRunSpan(ctx, r.ID, threadID)
	defer span.End()
	if d.metrics != nil {
		d.metrics.RunsStarted.Add(ctx, 1)
	}

	result, err := d.follow(ctx, started, r)
	if d.metrics != nil {
		d.metrics.RunDuration.Record(ctx, d.now().Sub(started).Seconds())
		if err != nil {
			d.metrics.RunsFailed.Add(ctx, 1)
		} else {
			d.metrics.RunsCompleted.Add(ctx, 1)
		}
	}
	return result, err
}

func (d *Driver) follow(ctx context.Context, started time.Time, r *run.Run) (*run.Run, error) {
	polls := 0
	actionCycles := 0

	for {
		if d.cfg.RunDeadline > 0 && d.now().Sub(started) > d.cfg.RunDeadline {
			return nil, fmt.Errorf("run %s exceeded %s deadline: %w", r.ID, d.cfg.RunDeadline, domain.ErrRunTimeout)
		}

		switch {
		case r.Status == run.StatusCompleted:
			slog.Debug("run completed", "run_id", r.ID, "polls", polls, "action_cycles", actionCycles)
			return r, nil

		case r.Status.Terminal():
			return nil, &domain.RunFailedError{Status: string(r.Status), Detail: r.LastError}

		case r.Status == run.StatusRequiresAction:
			actionCycles++
			if d.cfg.MaxActionCycles > 0 && actionCycles > d.cfg.MaxActionCycles {
				return nil, fmt.Errorf("run %s exceeded %d action cycles: %w", r.ID, d.cfg.MaxActionCycles, domain.ErrRunTimeout)
			}

			outputs, err := d.resolveTools(ctx, r.PendingCalls)
			if err != nil {
				return nil, err
			}
			next, err := d.svc.SubmitToolOutputs(ctx, r.ThreadID, r.ID, outputs)
			if err != nil {
				return nil, fmt.Errorf("submit tool outputs: %w", err)
			}
			r = next

		case r.Status.Active():
			polls++
			if d.cfg.MaxPolls > 0 && polls > d.cfg.MaxPolls {
				return nil, fmt.Errorf("run %s exceeded %d polls: %w", r.ID, d.cfg.MaxPolls, domain.ErrRunTimeout)
			}
			if err := d.sleep(ctx, d.cfg.PollInterval); err != nil {
				return nil, fmt.Errorf("poll wait: %w", err)
			}
			next, err := d.svc.GetRun(ctx, r.ThreadID, r.ID)
			if err != nil {
				return nil, fmt.Errorf("get run: %w", err)
			}
			r = next

		default:
			return nil, &domain.RunFailedError{Status: string(r.Status), Detail: "unrecognized run status"}
		}
	}
}

// resolveTools executes every pending invocation and produces exactly one
// output per invocation id. Unknown tools and handler failures become
// error-flagged result payloads; only marshalling the payload can fail.
func (d *Driver) resolveTools(ctx context.Context, calls []run.ToolInvocation) ([]run.ToolOutput, error) {
	outputs := make([]run.ToolOutput, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.MaxParallelTools)
	for i, call := range calls {
		g.Go(func() error {
			cctx, span := otel.StartToolCallSpan(gctx, call.ID, call.Name)
			defer span.End()
			if d.metrics != nil {
				d.metrics.ToolCalls.Add(cctx, 1)
			}

			res := d.tools.Invoke(cctx, call.Name, call.Arguments)
			if !res.Success {
				slog.Warn("tool invocation failed", "tool", call.Name, "call_id", call.ID, "message", res.Message)
			}

			payload, err := json.Marshal(res)
			if err != nil {
				return fmt.Errorf("marshal output for call %s: %w", call.ID, err)
			}
			outputs[i] = run.ToolOutput{CallID: call.ID, Output: string(payload)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
