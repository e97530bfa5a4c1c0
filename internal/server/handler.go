package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/abhisek/qtigen/internal/metrics"
	"github.com/abhisek/qtigen/internal/qti"
)

type fileEnvelope struct {
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type convertRequest struct {
	Mode   string        `json:"mode"`
	Text   string        `json:"text"`
	URL    string        `json:"url"`
	File   *fileEnvelope `json:"file"`
	Strict bool          `json:"strict"`
}

type convertResponse struct {
	XML       string   `json:"xml"`
	Mode      qti.Mode `json:"mode"`
	ElapsedMs int64    `json:"elapsed_ms"`
}

type healthResponse struct {
	Status     string `json:"status"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "", "method not allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "", "could not read request body")
		return
	}

	if err := validateEnvelope(body); err != nil {
		writeError(w, http.StatusBadRequest, qti.KindValidation, err.Error())
		return
	}

	var req convertRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, qti.KindValidation, "invalid JSON body")
		return
	}

	mode, err := qti.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, qti.KindValidation, err.Error())
		return
	}

	var att *qti.Attachment
	if req.File != nil {
		att = &qti.Attachment{Name: req.File.Name, MIMEType: req.File.MIMEType, Data: req.File.Data}
	}
	creq, err := qti.NewRequest(mode, req.Text, req.URL, att)
	if err != nil {
		writeError(w, http.StatusBadRequest, qti.KindValidation, err.Error())
		return
	}

	conv := s.converter
	if req.Strict {
		conv = s.strict
	}

	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	metrics.InputBytes.WithLabelValues(string(mode)).Observe(float64(inputSize(req)))

	start := time.Now()
	xml, err := conv.Convert(ctx, creq)
	elapsed := time.Since(start)
	metrics.ConversionDuration.WithLabelValues(string(mode)).Observe(elapsed.Seconds())

	if err != nil {
		kind := qti.KindOf(err)
		metrics.ConversionsTotal.WithLabelValues(string(mode), string(kind)).Inc()
		writeError(w, statusFor(kind), kind, err.Error())
		return
	}
	metrics.ConversionsTotal.WithLabelValues(string(mode), "ok").Inc()

	writeJSON(w, http.StatusOK, convertResponse{
		XML:       xml,
		Mode:      mode,
		ElapsedMs: elapsed.Milliseconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Provider:   s.info.Provider,
		Model:      s.info.Model,
		Configured: s.info.Configured,
	})
}

func inputSize(req convertRequest) int {
	n := len(req.Text) + len(req.URL)
	if req.File != nil {
		n += len(req.File.Data)
	}
	return n
}
