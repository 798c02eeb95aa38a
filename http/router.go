package http

import (
	"net/http"
)

type RouterConfig struct {
	StaticDir string
	BodyLimit int64
}

type Handlers struct {
	Repayment      *RepaymentHandler
	TaxCalculation *TaxCalculationHandler
	Feedback       *FeedbackHandler
}

// NewRouter wires the API routes behind the rate limiter and serves the
// static site from cfg.StaticDir when set.
func NewRouter(
	handlers Handlers,
	limiter *RateLimiter,
	cfg RouterConfig,
) http.Handler {

	api := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, LimitBody(cfg.BodyLimit, h))
	}

	mux := http.NewServeMux()
	mux.Handle("/api/calculate", api(handlers.Repayment.Calculate))
	mux.Handle("/api/tax-calculation", api(handlers.TaxCalculation.Save))
	mux.Handle("/api/feedback", api(handlers.Feedback.Submit))
	mux.Handle("/api/", api(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found")
	}))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return Recover(RequestLogger(SecurityHeaders(mux)))
}
