package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/gestureview"
	"github.com/xkilldash9x/gestureview/api/schemas"
	"github.com/xkilldash9x/gestureview/internal/frameloop"
	"github.com/xkilldash9x/gestureview/internal/observability"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// settleTimeout bounds how long replay waits for fling and animation
// playback to finish after the last scripted event.
const settleTimeout = 5 * time.Second

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Replay a recorded gesture script against a simulated viewport",
	Long: `Replay feeds a JSON array of gesture events through the viewport engine,
honoring each event's offsetMs pacing, and prints the final viewport state.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

// stateRecorder captures viewport snapshots published from the loop
// goroutine so the command goroutine can observe progress.
type stateRecorder struct {
	mu      sync.Mutex
	last    schemas.ViewportState
	changes int
}

func (r *stateRecorder) record(state schemas.ViewportState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = state
	r.changes++
}

func (r *stateRecorder) snapshot() (schemas.ViewportState, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.changes
}

func runReplay(cmd *cobra.Command, scriptPath string) error {
	logger := observability.GetLogger()
	ctx := cmd.Context()

	script, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	logger.Info("replaying gesture script",
		zap.String("script", scriptPath),
		zap.Int("events", len(script)),
	)

	view := gestureview.New(gestureview.Config{
		MaxScale:          cfg.View.MaxScale,
		AnimationDuration: time.Duration(cfg.View.AnimationDurationMs) * time.Millisecond,
		ImagePadding:      cfg.View.ImagePadding,
		FlingFriction:     cfg.View.FlingFriction,
	}, logger)
	view.SetSize(cfg.Replay.ContentWidth, cfg.Replay.ContentHeight)
	view.Layout(cfg.Replay.ViewportWidth, cfg.Replay.ViewportHeight)

	recorder := &stateRecorder{}
	view.SetOnChange(func(state schemas.ViewportState) {
		recorder.record(state)
		logger.Debug("viewport changed",
			zap.Int("scrollX", state.ScrollX),
			zap.Int("scrollY", state.ScrollY),
			zap.Float64("scale", state.Scale),
		)
	})

	loop := frameloop.New(view, cfg.Replay.FrameRate, logger)
	loop.Start(ctx)

	start := time.Now()
	for _, ev := range script {
		if err := pace(ctx, start, ev.OffsetMs); err != nil {
			_ = loop.Stop()
			return err
		}
		if err := loop.Dispatch(ctx, ev); err != nil {
			_ = loop.Stop()
			return err
		}
	}

	waitForSettle(ctx, recorder)
	if err := loop.Stop(); err != nil {
		return fmt.Errorf("replay loop failed: %w", err)
	}

	// Safe to read directly: Stop waits for the loop goroutine to exit.
	out, err := json.MarshalIndent(view.State(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal final state: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// loadScript decodes a JSON array of gesture events.
func loadScript(path string) ([]schemas.GestureEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var script []schemas.GestureEvent
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script %q: %w", path, err)
	}
	return script, nil
}

// pace sleeps until the event's scripted offset from replay start.
func pace(ctx context.Context, start time.Time, offsetMs int64) error {
	wait := time.Duration(offsetMs)*time.Millisecond - time.Since(start)
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// waitForSettle polls the recorder until the viewport goes quiet: no active
// fling or animation and no new state changes between polls.
func waitForSettle(ctx context.Context, recorder *stateRecorder) {
	deadline := time.Now().Add(settleTimeout)
	lastChanges := -1
	for time.Now().Before(deadline) {
		state, changes := recorder.snapshot()
		if changes == lastChanges && !state.IsFlinging && !state.IsSliding && !state.IsScaling {
			return
		}
		lastChanges = changes
		select {
		case <-ctx.Done():
			return
		case <-time.After(50 * time.Millisecond):
		}
	}
}
