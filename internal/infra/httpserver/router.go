package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appai "github.com/bryanwahyu/behavior-assessor/internal/application/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
	"github.com/bryanwahyu/behavior-assessor/internal/logger"
	"github.com/bryanwahyu/behavior-assessor/internal/middleware"
)

// maxBodyBytes caps request bodies; behavioral payloads can be large.
const maxBodyBytes = 16 << 20

type Options struct {
	AllowedOrigins []string
	RatePerSecond  float64
	RateBurst      int
}

type Router struct {
	aiSvc *appai.Service
}

func NewRouter(aiSvc *appai.Service, opts Options) http.Handler {
	r := &Router{aiSvc: aiSvc}
	mux := chi.NewRouter()

	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	mux.Use(middleware.RateLimitMiddleware(opts.RatePerSecond, opts.RateBurst))

	mux.Get("/health", middleware.HealthHandler)
	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Post("/analyze", r.wrap(r.handleAnalyze))
	mux.Post("/multimodal", r.wrap(r.handleMultimodal))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			logger.Log.WithError(err).WithField("path", req.URL.Path).Error("handler error")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

type analyzeRequest struct {
	ConversationData map[string]any `json:"conversation_data"`
	HumeData         map[string]any `json:"hume_data"`
	UserMessage      string         `json:"user_message"`
}

// decode never rejects a request: unreadable or malformed bodies become
// empty payloads.
func decode(req *http.Request) analyzeRequest {
	var body analyzeRequest
	err := json.NewDecoder(io.LimitReader(req.Body, maxBodyBytes)).Decode(&body)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Log.WithError(err).WithField("path", req.URL.Path).Warn("malformed request body, analyzing empty payload")
		body = analyzeRequest{}
	}
	if body.ConversationData == nil {
		body.ConversationData = map[string]any{}
	}
	if body.HumeData == nil {
		body.HumeData = map[string]any{}
	}
	return body
}

// POST /analyze
// Body: {"conversation_data": {...}, "hume_data": {...}}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	body := decode(req)
	conv := body.ConversationData
	if body.UserMessage != "" {
		if _, ok := conv["user_message"]; !ok {
			conv["user_message"] = body.UserMessage
		}
	}
	return r.respond(w, req, conv, body.HumeData)
}

// POST /multimodal
// Body: {"user_message": "...", "hume_data": {...}}
func (r *Router) handleMultimodal(w http.ResponseWriter, req *http.Request) error {
	body := decode(req)
	conv := map[string]any{"user_message": body.UserMessage}
	if sid, ok := body.HumeData["session_id"]; ok {
		conv["session_id"] = sid
	}
	return r.respond(w, req, conv, body.HumeData)
}

func (r *Router) respond(w http.ResponseWriter, req *http.Request, conv, behavioral map[string]any) error {
	res := r.aiSvc.Analyze(req.Context(), conv, behavioral)
	middleware.RecordAnalysis(res.Source == assessment.SourceModel)

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(res)
}
