package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bearlink/file"
	"bearlink/message"
	"bearlink/repository"
	"bearlink/search"
)

// Server exposes the profile search, message drafting and diagnostic
// endpoints. It only ever reads the vector collection; ingestion runs as a
// separate process.
type Server struct {
	logger    *zap.Logger
	searcher  *search.Service
	generator *message.Generator
	extractor *file.Core
	repo      repository.ProfileVectorRepo
	port      int
}

func NewServer(logger *zap.Logger, searcher *search.Service, generator *message.Generator,
	extractor *file.Core, repo repository.ProfileVectorRepo, port int) *Server {
	return &Server{
		logger:    logger,
		searcher:  searcher,
		generator: generator,
		extractor: extractor,
		repo:      repo,
		port:      port,
	}
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/email", s.handleEmail)
	mux.HandleFunc("/api/debug-profiles", s.handleDebugProfiles)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	handler := s.withRequestID(withCORS(mux))

	s.logger.Info("starting api server", zap.Int("port", s.port))
	return http.ListenAndServe(":"+strconv.Itoa(s.port), handler)
}

// withCORS allows the browser frontend to call the API from any origin.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		s.logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}
