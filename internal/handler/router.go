/*
Package handler provides the HTTP handlers and routing setup for the Whispeer server.

This file defines the main Router, applying logging, CORS, and recovery
middleware before delegating to the API handlers, and serves the static
client from the configured public directory.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"whispeer/internal/pkg/errs"
	"whispeer/internal/pkg/logx"
	"whispeer/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Store.Ping(r.Context()); err != nil {
			logx.Error(err, "health check: store unreachable")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		data := map[string]string{
			"status":  "ok",
			"service": "Whispeer Server",
		}
		resp.RespondJSON(w, r, http.StatusOK, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/login", HandleLogin(deps))
		api.Get("/user/{username}", HandleGetUser(deps))
		api.Get("/search/{fragment}", HandleSearchUsers(deps))
		api.Post("/message", HandleSendMessage(deps))
		api.Delete("/message/{username}/{index}", HandleDeleteMessage(deps))
		api.Put("/pin/{username}/{index}", HandleTogglePin(deps))
		api.Post("/reply", HandleAddReply(deps))
	})

	r.Handle("/*", http.FileServer(http.Dir(deps.Config.PublicDir)))

	return r
}
