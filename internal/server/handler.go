package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/bisub/internal/config"
	"github.com/nguyentantai21042004/bisub/internal/logger"
	"github.com/nguyentantai21042004/bisub/internal/processor"
)

// DownloadName is the file name offered for the translated result.
const DownloadName = "fixed_output_translated.srt"

type translateHandler struct {
	cfg    *config.Config
	proc   processor.Processor
	logger logger.Logger

	// one file at a time
	mu sync.Mutex
}

func newTranslateHandler(cfg *config.Config, proc processor.Processor, log logger.Logger) *translateHandler {
	return &translateHandler{cfg: cfg, proc: proc, logger: log}
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Translate accepts a multipart upload in field "file" and responds with the
// bilingual, renumbered subtitle as an attachment.
func (h *translateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Server.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, "file too large", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "missing upload field \"file\"", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if strings.ToLower(filepath.Ext(header.Filename)) != ".srt" {
		jsonError(w, "only .srt files are supported", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	jobID := uuid.NewString()
	h.logger.Info(ctx, "Upload %s received: %s (%d bytes)", jobID, header.Filename, header.Size)

	inputPath, outputPath, err := h.stage(jobID, file)
	defer h.remove(ctx, inputPath, outputPath, transcriptPath(outputPath))
	if err != nil {
		h.logger.Error(ctx, "Upload %s: %v", jobID, err)
		jsonError(w, "failed to store upload", http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	_, err = h.proc.Process(ctx, inputPath, outputPath)
	h.mu.Unlock()
	if err != nil {
		h.logger.Error(ctx, "Upload %s: %v", jobID, err)
		jsonError(w, "translation failed", http.StatusInternalServerError)
		return
	}

	out, err := os.Open(outputPath)
	if err != nil {
		h.logger.Error(ctx, "Upload %s: open result: %v", jobID, err)
		jsonError(w, "translation failed", http.StatusInternalServerError)
		return
	}
	defer out.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DownloadName))
	if _, err := io.Copy(w, out); err != nil {
		h.logger.Warn(ctx, "Upload %s: send result: %v", jobID, err)
	}
}

// stage writes the upload to the temp folder and returns the input and output paths.
func (h *translateHandler) stage(jobID string, src io.Reader) (string, string, error) {
	if err := os.MkdirAll(h.cfg.Paths.Temp, 0755); err != nil {
		return "", "", fmt.Errorf("create temp dir: %w", err)
	}

	inputPath := filepath.Join(h.cfg.Paths.Temp, jobID+".srt")
	outputPath := filepath.Join(h.cfg.Paths.Temp, jobID+"_fixed.srt")

	dst, err := os.Create(inputPath)
	if err != nil {
		return "", "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return inputPath, outputPath, fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return inputPath, outputPath, fmt.Errorf("close upload file: %w", err)
	}
	return inputPath, outputPath, nil
}

func (h *translateHandler) remove(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			h.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", p, err)
		}
	}
}

// transcriptPath is where the processor writes the optional .docx export.
func transcriptPath(outputPath string) string {
	if outputPath == "" {
		return ""
	}
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".docx"
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
