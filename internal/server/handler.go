package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rpgo/surplus-calculator/internal/cache"
	"github.com/rpgo/surplus-calculator/internal/calculation"
	"github.com/rpgo/surplus-calculator/internal/config"
	"github.com/rpgo/surplus-calculator/internal/logging"
	"github.com/rpgo/surplus-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// maxBodyBytes bounds the size of a comparison request
const maxBodyBytes = 1 << 20

// Pinger is a dependency the readiness check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures a Handler
type Options struct {
	Engine             cache.Comparer
	Metrics            *Metrics
	Logger             *logging.Logger
	DefaultSavingsRate decimal.Decimal
	Checks             map[string]Pinger
	Now                func() time.Time
}

// Handler serves the comparison API
type Handler struct {
	engine      cache.Comparer
	parser      *config.InputParser
	validator   *validator.Validate
	metrics     *Metrics
	logger      *logging.Logger
	defaultRate decimal.Decimal
	checks      map[string]Pinger
	now         func() time.Time
}

// NewHandler creates a handler. Engine and Metrics are required.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &Handler{
		engine:      opts.Engine,
		parser:      config.NewInputParser(),
		validator:   v,
		metrics:     opts.Metrics,
		logger:      logger.WithComponent(logging.ComponentHTTP),
		defaultRate: opts.DefaultSavingsRate,
		checks:      opts.Checks,
		now:         now,
	}
}

// Compare runs the three scenarios for the posted configuration
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	includeLedger := true
	if raw := r.URL.Query().Get("ledger"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.reject(w, "bad_query", "Invalid ledger parameter", err)
			return
		}
		includeLedger = v
	}

	var req CompareRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.reject(w, "bad_body", "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.reject(w, "invalid", "Validation failed", err, fieldProblems(err)...)
		return
	}

	cfg, err := req.Configuration(h.defaultRate)
	if err != nil {
		h.reject(w, "invalid", "Validation failed", err)
		return
	}
	if err := h.parser.ValidateConfiguration(cfg); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			h.reject(w, "invalid", "Validation failed", err, verr.Problems...)
			return
		}
		h.reject(w, "invalid", "Validation failed", err)
		return
	}

	result, err := h.engine.Compare(r.Context(), cfg)
	switch {
	case errors.Is(err, calculation.ErrTermTooLong):
		h.reject(w, "invalid", "Validation failed", err)
		return
	case errors.Is(err, calculation.ErrNoMinimumPayment):
		h.metrics.ComparisonErrors.WithLabelValues("no_minimum_payment").Inc()
		writeError(w, http.StatusUnprocessableEntity, "Nothing to compare", err)
		return
	case err != nil:
		h.metrics.ComparisonErrors.WithLabelValues("internal").Inc()
		h.logger.Error("comparison failed", logging.FieldRequestID, RequestID(r.Context()), logging.FieldError, err)
		writeError(w, http.StatusInternalServerError, "Comparison failed", err)
		return
	}

	h.metrics.Comparisons.WithLabelValues(string(result.Best)).Inc()
	h.logger.Debug("comparison complete",
		logging.FieldRequestID, RequestID(r.Context()),
		logging.FieldScenario, string(result.Best))

	if !includeLedger {
		result = result.WithoutLedgers()
	}
	writeJSON(w, http.StatusOK, result)
}

// Example returns the default configuration starting today
func (h *Handler) Example(w http.ResponseWriter, r *http.Request) {
	cfg := h.parser.CreateExampleConfiguration(dateutil.Today(h.now()))
	writeJSON(w, http.StatusOK, RequestFromConfiguration(cfg))
}

// HealthStatus is the body of the health endpoint
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health reports liveness and the state of configured dependencies
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: h.now(),
		Checks:    make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			status.Status = "degraded"
			status.Checks[name] = "failed: " + err.Error()
			continue
		}
		status.Checks[name] = "ok"
	}

	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) reject(w http.ResponseWriter, reason, message string, err error, details ...string) {
	h.metrics.ComparisonErrors.WithLabelValues(reason).Inc()
	writeError(w, http.StatusBadRequest, message, err, details...)
}

func fieldProblems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "CompareRequest.")
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s: failed %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}
	return problems
}
