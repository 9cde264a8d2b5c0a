package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"bearlink/message"
)

type SearchRequest struct {
	Query string `json:"query"`
}

type EmailResponse struct {
	Email string `json:"email"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

const maxUploadBytes = 16 << 20

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	s.logger.Info("user query", zap.String("query", req.Query))

	results, err := s.searcher.Search(r.Context(), req.Query)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		http.Error(w, "search failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	var target message.Target
	if err := json.Unmarshal([]byte(r.FormValue("profile")), &target); err != nil {
		http.Error(w, "invalid profile: "+err.Error(), http.StatusBadRequest)
		return
	}
	reason := r.FormValue("context")

	fileContext, err := s.uploadedFileText(r)
	if err != nil {
		s.logger.Warn("file extraction failed", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Error processing file: " + err.Error()})
		return
	}

	email, err := s.generator.Draft(r.Context(), target, reason, fileContext)
	if err != nil {
		s.logger.Error("message generation failed", zap.Error(err))
		http.Error(w, "message generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, EmailResponse{Email: email})
}

// uploadedFileText extracts text from the optional "file" form part. A
// missing part is fine; an unreadable or unsupported file is an error.
func (s *Server) uploadedFileText(r *http.Request) (string, error) {
	part, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		return "", err
	}
	return s.extractor.Extract(header.Filename, content)
}

func (s *Server) handleDebugProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	payloads, err := s.repo.Scroll(r.Context(), limit)
	if err != nil {
		s.logger.Error("scroll failed", zap.Error(err))
		http.Error(w, "scroll failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, payloads)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
