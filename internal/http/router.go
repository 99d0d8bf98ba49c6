// Package http wires the API routes. Read endpoints are public; every
// mutation sits behind the admin session token.
package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solo-mizan/goru-club/internal/handlers"
	"github.com/solo-mizan/goru-club/internal/middleware"
)

// loginLimiter keeps credential guessing slow: 5 attempts per minute per IP
var loginLimiter = middleware.NewRateLimiter(5, time.Minute)

type RouterConfig struct {
	UploadsDir string
	PublicPath string
}

func NewRouter(
	memberHandler *handlers.MemberHandler,
	depositHandler *handlers.DepositHandler,
	cowPurchaseHandler *handlers.CowPurchaseHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	metrics *middleware.Metrics,
	cfg RouterConfig,
) *mux.Router {
	r := mux.NewRouter()
	// registered on the router so the matched route template is
	// available as a metric label
	r.Use(metrics.Handler)

	admin := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.RequireAdmin(h)
	}

	// Auth
	r.Handle("/api/auth/login", loginLimiter.Middleware(http.HandlerFunc(authHandler.Login))).Methods(http.MethodPost)

	// Members
	r.HandleFunc("/api/members", memberHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/members/with-deposits", memberHandler.ListWithDeposits).Methods(http.MethodGet)
	r.HandleFunc("/api/members/{id}", memberHandler.Get).Methods(http.MethodGet)
	r.Handle("/api/members", admin(memberHandler.Create)).Methods(http.MethodPost)
	r.Handle("/api/members/{id}", admin(memberHandler.Update)).Methods(http.MethodPut)
	r.Handle("/api/members/{id}", admin(memberHandler.Delete)).Methods(http.MethodDelete)

	// Deposits
	r.HandleFunc("/api/deposits", depositHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/deposits/summary/stats", depositHandler.Summary).Methods(http.MethodGet)
	r.HandleFunc("/api/deposits/member/{memberId}", depositHandler.ListByMember).Methods(http.MethodGet)
	r.HandleFunc("/api/deposits/{id}", depositHandler.Get).Methods(http.MethodGet)
	r.Handle("/api/deposits", admin(depositHandler.Create)).Methods(http.MethodPost)
	r.Handle("/api/deposits/{id}", admin(depositHandler.Update)).Methods(http.MethodPut)
	r.Handle("/api/deposits/{id}", admin(depositHandler.Delete)).Methods(http.MethodDelete)

	// Cow purchases
	r.HandleFunc("/api/cow-purchases", cowPurchaseHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/cow-purchases/summary/stats", cowPurchaseHandler.Summary).Methods(http.MethodGet)
	r.HandleFunc("/api/cow-purchases/{id}", cowPurchaseHandler.Get).Methods(http.MethodGet)
	r.Handle("/api/cow-purchases", admin(cowPurchaseHandler.Create)).Methods(http.MethodPost)
	r.Handle("/api/cow-purchases/{id}", admin(cowPurchaseHandler.Update)).Methods(http.MethodPut)
	r.Handle("/api/cow-purchases/{id}", admin(cowPurchaseHandler.Delete)).Methods(http.MethodDelete)

	// Ops
	r.HandleFunc("/healthz", healthHandler.Check).Methods(http.MethodGet)
	r.HandleFunc("/api/health/system", healthHandler.System).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Receipt files
	r.PathPrefix(cfg.PublicPath + "/").Handler(
		http.StripPrefix(cfg.PublicPath+"/", receiptServer(cfg.UploadsDir)))

	return r
}

// receiptServer serves stored receipt files without exposing directory
// listings: receipts are fetched by exact path, so any directory
// request is an enumeration attempt and gets a 404
func receiptServer(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}
