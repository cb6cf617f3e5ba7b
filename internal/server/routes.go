package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gift_registry/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth", handler(s.postV1Auth))

		r.Get("/catalog", handler(s.getV1Catalog))
		r.Put("/event-info", handler(s.putV1EventInfo))

		r.Route("/gifts", func(r chi.Router) {
			r.Post("/", handler(s.postV1Gift))
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", handler(s.putV1Gift))
				r.Delete("/", handler(s.deleteV1Gift))
				r.Post("/reserve", handler(s.postV1GiftReserve))
				r.Post("/unreserve", handler(s.postV1GiftUnreserve))
			})
		})
	})
}

// RegisterStatic раздаёт сохранённые изображения.
func RegisterStatic(r chi.Router, dir string) {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
	r.Get("/static/*", fileServer.ServeHTTP)
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
