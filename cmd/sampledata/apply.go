package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/johnwards/sampledata/internal/config"
	"github.com/johnwards/sampledata/internal/logfields"
	"github.com/johnwards/sampledata/internal/sampledata"
	"github.com/johnwards/sampledata/internal/userstate"
)

// runApply applies steps from..to of pluginType in order, stopping at the
// first failed step. State lives in memory for the duration of the run.
func runApply(cfg config.Config, pluginType string, from, to int) error {
	ctx := context.Background()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	steps := 0
	for _, ov := range a.runner.Overviews() {
		if ov.Name == pluginType {
			steps = ov.Steps
		}
	}
	if steps == 0 {
		return fmt.Errorf("%w: %q", sampledata.ErrUnknownType, pluginType)
	}
	if to == 0 {
		to = steps
	}
	if from < 1 || to < from {
		return fmt.Errorf("invalid step range %d..%d", from, to)
	}

	state := userstate.NewMemory()
	runID := uuid.NewString()
	slog.Info("Applying sample data", logfields.Type(pluginType), "from", from, "to", to, logfields.CorrelationID(runID))

	for step := from; step <= to; step++ {
		resp, err := a.runner.Apply(ctx, sampledata.StepRequest{Type: pluginType, Step: step}, state, runID)
		if err != nil {
			return fmt.Errorf("apply step %d: %w", step, err)
		}
		if !resp.Success {
			return errors.New(resp.Message)
		}
	}

	slog.Info("Sample data applied", logfields.Type(pluginType), logfields.Count(to-from+1))
	return nil
}

func runOverview(cfg config.Config, w io.Writer) error {
	a, err := newApp(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a.runner.Overviews()); err != nil {
		return fmt.Errorf("write overview: %w", err)
	}
	return nil
}
