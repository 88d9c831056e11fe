// Package http exposes the dashboard API: monthly reports, transaction and
// revenue management, and health probes.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"atelie/internal/analytics"
	"atelie/internal/cache"
	"atelie/internal/middleware/ratelimit"
	"atelie/internal/middleware/trace"
	"atelie/internal/services"
)

type Server struct {
	http.Server

	svc         *services.LedgerService
	trendWindow int

	// Reports are cached per (version, month, year, window); a ledger write
	// bumps the version, so stale entries are never served and age out of
	// the LRU on their own.
	reportCache *cache.LRU[analytics.Report]
	janitor     *cache.Janitor
	limiter     *ratelimit.Limiter

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, svc *services.LedgerService, trendWindow int) *Server {
	if trendWindow < 1 {
		trendWindow = analytics.DefaultTrendWindow
	}

	s := &Server{
		svc:         svc,
		trendWindow: trendWindow,
		reportCache: cache.NewLRU[analytics.Report](100, 5*time.Minute),
		janitor:     cache.NewJanitor(),
		limiter:     ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	s.janitor.Register(s.reportCache)
	s.janitor.Start(10 * time.Minute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /api/transactions", s.handleListMonthlyExpenses)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)
	mux.HandleFunc("GET /api/revenues", s.handleListRevenues)
	mux.HandleFunc("POST /api/revenues", s.handleCreateRevenue)
	mux.HandleFunc("DELETE /api/revenues/{id}", s.handleDeleteRevenue)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	traceMW := trace.NewMiddleware(extractClientIP)
	limitMW := s.limiter.Middleware(extractClientIP, nil)

	s.Server = http.Server{
		Addr:    addr,
		Handler: traceMW.Middleware(limitMW(withSecurityHeaders(mux))),
	}

	return s
}

// Shutdown stops the background routines and the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.janitor.Stop()
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, err := s.svc.Version(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, "ledger unavailable")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// getReport returns the report for (month, year), reusing a cached copy when
// the ledger version has not moved.
func (s *Server) getReport(ctx context.Context, month, year, window int) (analytics.Report, error) {
	version, err := s.svc.Version(ctx)
	if err != nil {
		return analytics.Report{}, fmt.Errorf("read version: %w", err)
	}

	key := reportCacheKey(version, year, month, window)
	if report, found := s.reportCache.Get(key); found {
		slog.DebugContext(ctx, "Report cache hit", "year", year, "month", month, "version", version)
		return report, nil
	}

	report, builtAt, err := s.svc.MonthReport(ctx, month, year, window)
	if err != nil {
		return analytics.Report{}, err
	}

	// A write may land between the version read and the list reads; key the
	// entry by the version the report was actually built at.
	s.reportCache.Set(reportCacheKey(builtAt, year, month, window), report)
	return report, nil
}

func reportCacheKey(version int64, year, month, window int) string {
	return "v" + strconv.FormatInt(version, 10) + ":" +
		strconv.Itoa(year) + "-" + strconv.Itoa(month) + ":" + strconv.Itoa(window)
}
