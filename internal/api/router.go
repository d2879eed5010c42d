package api

import (
	"net/http"
	"time"

	_ "metalwatch/docs"
	"metalwatch/internal/quote/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(quoteHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/", quoteHandler.Home)
	router.Get("/webhook", quoteHandler.WebhookInfo)
	router.Post("/webhook", quoteHandler.Webhook)
	router.Get("/status", quoteHandler.StatusInfo)
	router.Post("/status", quoteHandler.Status)
	router.Get("/api/v1/prices/spot", quoteHandler.GetSpotPrice)
	router.Get("/api/v1/prices/companies", quoteHandler.GetCompanyUpdates)
	return router
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("Request handled")
	})
}
