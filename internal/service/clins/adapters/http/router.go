package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Router(srv *Server) http.Handler {
	r := chi.NewRouter()

	r.Post("/documents/{documentType}/$convert", srv.ConvertDocument)
	r.Get("/capabilities", srv.GetCapabilities)
	r.Get("/health", srv.GetHealthStatus)

	return r
}
