package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/orbitpath/dijkstra"
	"github.com/katalvlaran/orbitpath/universe"
	"github.com/katalvlaran/orbitpath/weight"
)

// maxBodyBytes caps request bodies; a full universe fits in well under 1 KiB.
const maxBodyBytes = 64 << 10

// Handlers exposes the shortest-path engine over HTTP.
type Handlers struct {
	logger     *zap.Logger
	validate   *validator.Validate
	metrics    *Metrics
	engineOpts []dijkstra.Option
}

// NewHandlers constructs Handlers. engineOpts are applied to every request
// before any per-request override.
func NewHandlers(logger *zap.Logger, metrics *Metrics, engineOpts ...dijkstra.Option) *Handlers {
	return &Handlers{
		logger:     logger,
		validate:   validator.New(),
		metrics:    metrics,
		engineOpts: engineOpts,
	}
}

// pathsRequest is the body of POST /api/v1/paths. A nil Active selects the
// starter universe; an explicit empty list is an empty universe. Duplicates in
// Active are collapsed, so only the value range is checked per entry.
// TieBreak and Strategy are case-insensitive.
type pathsRequest struct {
	Source   int    `json:"source" validate:"required,min=1,max=100"`
	Active   []int  `json:"active" validate:"omitempty,dive,min=1,max=100"`
	TieBreak string `json:"tieBreak,omitempty" validate:"omitempty,oneof=lowest insertion"`
	Strategy string `json:"strategy,omitempty" validate:"omitempty,oneof=scan heap"`
}

// normalize lower-cases the enum fields so they match the config parsers.
func (req *pathsRequest) normalize() {
	req.TieBreak = strings.ToLower(strings.TrimSpace(req.TieBreak))
	req.Strategy = strings.ToLower(strings.TrimSpace(req.Strategy))
}

type pathsResponse struct {
	dijkstra.PathResult
	Ranked      []dijkstra.Proximity `json:"ranked"`
	TotalWeight float64              `json:"totalWeight"`
}

type weightQuery struct {
	A int `validate:"min=1,max=100"`
	B int `validate:"min=1,max=100,nefield=A"`
}

type starterResponse struct {
	Active []int `json:"active"`
}

// Starter handles GET /api/v1/universe/starter.
func (h *Handlers) Starter(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, starterResponse{Active: universe.StarterNodes()})
}

// Paths handles POST /api/v1/paths.
func (h *Handlers) Paths(w http.ResponseWriter, r *http.Request) {
	var req pathsRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	req.normalize()
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	set := universe.Starter()
	if req.Active != nil {
		var err error
		if set, err = universe.FromValues(req.Active...); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	opts, err := h.requestOptions(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := dijkstra.ShortestPaths(req.Source, set, opts...)
	if h.metrics != nil {
		h.metrics.ObserveComputation(res, set.Len())
	}
	h.logger.Debug("paths computed",
		zap.Int("source", req.Source),
		zap.Int("active", set.Len()),
		zap.Int("edges", len(res.Edges)),
		zap.Bool("empty", res.IsEmpty()),
	)

	respondJSON(w, http.StatusOK, pathsResponse{
		PathResult:  res,
		Ranked:      res.Ranked(),
		TotalWeight: res.TotalWeight(),
	})
}

// Weight handles GET /api/v1/weight?a=&b=.
func (h *Handlers) Weight(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, errA := strconv.Atoi(q.Get("a"))
	b, errB := strconv.Atoi(q.Get("b"))
	if errA != nil || errB != nil {
		writeError(w, http.StatusBadRequest, "query parameters a and b must be integers")
		return
	}
	if err := h.validate.Struct(weightQuery{A: a, B: b}); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	respondJSON(w, http.StatusOK, weight.Explain(a, b))
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestOptions layers per-request overrides over the service defaults.
func (h *Handlers) requestOptions(req pathsRequest) ([]dijkstra.Option, error) {
	opts := make([]dijkstra.Option, 0, len(h.engineOpts)+2)
	opts = append(opts, h.engineOpts...)
	if req.TieBreak != "" {
		tb, err := dijkstra.ParseTieBreak(req.TieBreak)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dijkstra.WithTieBreak(tb))
	}
	if req.Strategy != "" {
		st, err := dijkstra.ParseStrategy(req.Strategy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dijkstra.WithStrategy(st))
	}

	return opts, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "field " + fe.Namespace() + " failed " + fe.Tag() + " validation"
	}

	return err.Error()
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
