package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
	"github.com/DoyleJ11/odd-one-out/internal/hub"
	"github.com/DoyleJ11/odd-one-out/internal/ws"
)

func SetupRoutes(h *hub.Hub, wsOpts ws.Options, log *zap.Logger) http.Handler {
	hs := handlers{hub: h, log: log}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(log))

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", hs.createSession)
		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", hs.getSession)
			r.Delete("/", hs.deleteSession)
			r.Post("/start", hs.lifecycle(engine.CmdStart))
			r.Post("/restart", hs.lifecycle(engine.CmdRestart))
			r.Post("/stop", hs.lifecycle(engine.CmdStop))
			r.Post("/choices", hs.choose)
		})
	})

	r.Get("/healthz", Healthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", ws.Handler(h, wsOpts))
	return r
}
