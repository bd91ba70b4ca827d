// Package httpapi exposes the REST surface over whichever store was
// selected at startup.
package httpapi

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"olympiad-cms/internal/event"
	"olympiad-cms/internal/store"
	"olympiad-cms/internal/upload"
)

type Server struct {
	store     store.Store
	uploads   *upload.Manager
	publisher event.Publisher
	logger    *log.Logger
}

func NewServer(st store.Store, uploads *upload.Manager, publisher event.Publisher, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &Server{
		store:     st,
		uploads:   uploads,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.health).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.stats).Methods(http.MethodGet)

	api.HandleFunc("/news", s.listArticles).Methods(http.MethodGet)
	api.HandleFunc("/news", s.createArticle).Methods(http.MethodPost)
	api.HandleFunc("/news/categories", s.articleCategories).Methods(http.MethodGet)
	api.HandleFunc("/news/{id}", s.getArticle).Methods(http.MethodGet)
	api.HandleFunc("/news/{id}", s.updateArticle).Methods(http.MethodPut)
	api.HandleFunc("/news/{id}", s.deleteArticle).Methods(http.MethodDelete)

	api.HandleFunc("/events", s.listEvents).Methods(http.MethodGet)
	api.HandleFunc("/events", s.createEvent).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}", s.getEvent).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", s.updateEvent).Methods(http.MethodPut)
	api.HandleFunc("/events/{id}", s.deleteEvent).Methods(http.MethodDelete)

	api.HandleFunc("/media", s.listMedia).Methods(http.MethodGet)
	api.HandleFunc("/media", s.createMedia).Methods(http.MethodPost)
	api.HandleFunc("/media/{id}", s.getMedia).Methods(http.MethodGet)
	api.HandleFunc("/media/{id}", s.deleteMedia).Methods(http.MethodDelete)

	api.HandleFunc("/results", s.listResults).Methods(http.MethodGet)
	api.HandleFunc("/results", s.createResult).Methods(http.MethodPost)
	api.HandleFunc("/results/{id}", s.getResult).Methods(http.MethodGet)
	api.HandleFunc("/results/{id}", s.updateResult).Methods(http.MethodPut)
	api.HandleFunc("/results/{id}", s.deleteResult).Methods(http.MethodDelete)

	api.HandleFunc("/sponsors", s.listSponsors).Methods(http.MethodGet)
	api.HandleFunc("/sponsors", s.createSponsor).Methods(http.MethodPost)
	api.HandleFunc("/sponsors/{id}", s.getSponsor).Methods(http.MethodGet)
	api.HandleFunc("/sponsors/{id}", s.updateSponsor).Methods(http.MethodPut)
	api.HandleFunc("/sponsors/{id}", s.deleteSponsor).Methods(http.MethodDelete)

	r.PathPrefix(upload.PublicPrefix).Handler(
		http.StripPrefix(upload.PublicPrefix,
			http.FileServer(http.Dir(s.uploads.Dir()))))

	return r
}

// Handler wraps the router with CORS for the configured origins.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(s.Router())
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		s.logger.Printf("fetch stats: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// publish notifies the message bus about a write. Best-effort: a bus
// failure never fails the request.
func (s *Server) publish(r *http.Request, resource, action, id string) {
	if err := s.publisher.PublishContentChanged(r.Context(), resource, action, id); err != nil {
		s.logger.Printf("failed to publish %s.%s for %s: %v", resource, action, id, err)
	}
}

// Listen binds the preferred port, probing upward when it is taken.
func Listen(preferred, probes int, logger *log.Logger) (net.Listener, error) {
	if probes < 1 {
		probes = 1
	}
	for port := preferred; port < preferred+probes; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			continue
		}
		if port != preferred {
			logger.Printf("port %d unavailable, listening on %d instead", preferred, port)
		}
		return ln, nil
	}
	return nil, fmt.Errorf("no free port in range %d-%d", preferred, preferred+probes-1)
}
