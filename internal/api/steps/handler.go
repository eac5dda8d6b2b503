package steps

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"

	"github.com/johnwards/sampledata/internal/api"
	"github.com/johnwards/sampledata/internal/logfields"
	"github.com/johnwards/sampledata/internal/runner"
	"github.com/johnwards/sampledata/internal/sampledata"
	"github.com/johnwards/sampledata/internal/userstate"
)

// Handler serves the sample-data step endpoints.
type Handler struct {
	runner   *runner.Runner
	sessions sessions.Store
}

// Overview handles GET /api/sampledata/overview.
func (h *Handler) Overview(w http.ResponseWriter, _ *http.Request) {
	ovs := h.runner.Overviews()
	results := make([]any, len(ovs))
	for i, ov := range ovs {
		results[i] = ov
	}
	api.WriteJSON(w, http.StatusOK, api.CollectionResponse{Results: results})
}

// Apply handles POST /api/sampledata/apply/{step} and POST /api/sampledata/apply.
// The plugin type comes from the "type" query or form value; the step from the
// path, or the "step" value when the path has none.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.PathValue("step")
	if raw == "" {
		raw = r.FormValue("step")
	}
	step, err := strconv.Atoi(raw)
	if err != nil {
		api.InvalidParam(w, r, "step", "INVALID_INTEGER", fmt.Sprintf("step must be an integer, got %q", raw))
		return
	}

	pluginType := r.FormValue("type")
	if pluginType == "" {
		api.InvalidParam(w, r, "type", "REQUIRED", "type is required")
		return
	}

	state, err := userstate.Load(h.sessions, r, userstate.DefaultSessionName)
	if err != nil {
		api.Fail(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	resp, err := h.runner.Apply(ctx, sampledata.StepRequest{Type: pluginType, Step: step}, state, api.CorrelationID(ctx))
	if err != nil {
		if errors.Is(err, sampledata.ErrUnknownType) || errors.Is(err, sampledata.ErrStepOutOfRange) {
			api.Fail(w, r, http.StatusNotFound, err.Error())
			return
		}
		api.Fail(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if err := state.Save(r, w); err != nil {
		slog.Warn("Failed to save sample data session", logfields.Type(pluginType), logfields.Step(step), logfields.Error(err))
	}

	api.WriteJSON(w, http.StatusOK, resp)
}
