package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/jobportal/internal/extraction"
	"github.com/jonathan/jobportal/internal/jobsource"
	"github.com/jonathan/jobportal/internal/skills"
)

// maxUploadSize caps resume uploads at 10 MiB.
const maxUploadSize = 10 << 20

var validate = validator.New()

// ParseResumeResponse represents the response for /parse-resume
type ParseResumeResponse struct {
	Success   bool     `json:"success"`
	Skills    []string `json:"skills"`
	Query     string   `json:"query"`
	CharCount int      `json:"char_count"`
}

// JobsResponse represents the response for /jobs
type JobsResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Jobs    []jobsource.Job `json:"jobs"`
}

// jobsRequest holds the query parameters of /jobs.
type jobsRequest struct {
	Skills     string `validate:"omitempty,max=500"`
	Location   string `validate:"omitempty,max=200"`
	Experience string `validate:"omitempty,max=100"`
	Remote     bool
}

// handleParseResume accepts a multipart resume upload (PDF or DOCX),
// extracts its text in memory and returns the detected skills plus a
// ready-to-use search query.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A resume file upload is required.")
		return
	}
	defer file.Close()

	format, ok := detectFormat(header)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF and DOCX files are supported.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("reading upload", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read uploaded file.")
		return
	}
	if len(data) == 0 {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Uploaded file is empty.")
		return
	}

	text, err := extraction.Text(data, format)
	if err != nil {
		s.logger.Error("resume extraction failed",
			zap.String("format", string(format)),
			zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), "Failed to parse resume: "+err.Error())
		return
	}
	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Could not extract text from resume.")
		return
	}

	matched := skills.Extract(text)

	s.jsonResponse(w, http.StatusOK, ParseResumeResponse{
		Success:   true,
		Skills:    matched,
		Query:     skills.SearchQuery(matched),
		CharCount: utf8.RuneCountInString(text),
	})
}

// handleJobs fetches job listings from the configured provider.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	req := jobsRequest{
		Skills:     params.Get("skills"),
		Location:   params.Get("location"),
		Experience: params.Get("experience"),
	}
	if raw := params.Get("remote"); raw != "" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid remote flag: "+raw)
			return
		}
		req.Remote = remote
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	query := jobsource.Query{
		Skills:     splitSkills(req.Skills),
		Location:   req.Location,
		Experience: req.Experience,
		Remote:     req.Remote,
	}

	jobs, err := s.source.Fetch(r.Context(), query)
	if err != nil {
		s.logger.Error("job fetch failed",
			zap.String("provider", s.source.Name()),
			zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), "Failed to fetch jobs: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, JobsResponse{
		Success: true,
		Count:   len(jobs),
		Jobs:    jobs,
	})
}

// detectFormat decides the document format from the upload's
// content-type, falling back to the filename extension.
func detectFormat(header *multipart.FileHeader) (extraction.Format, bool) {
	contentType := header.Header.Get("Content-Type")
	name := strings.ToLower(header.Filename)

	switch {
	case contentType == "application/pdf" || strings.HasSuffix(name, ".pdf"):
		return extraction.FormatPDF, true
	case strings.Contains(contentType, "word") || strings.HasSuffix(name, ".docx"):
		return extraction.FormatDOCX, true
	default:
		return "", false
	}
}

// splitSkills parses the comma-separated skills parameter, dropping
// blank entries.
func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
