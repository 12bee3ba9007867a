package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cancer_api/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Route("/cancer", func(r chi.Router) {
			r.Post("/predict", handler(s.postPredict))
			r.Get("/weights", handler(s.getWeights))
			r.Get("/model", handler(s.getModel))

			r.Route("/predictions", func(r chi.Router) {
				r.Get("/", handler(s.getPredictions))
				r.Get("/{id}", handler(s.getPrediction))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
