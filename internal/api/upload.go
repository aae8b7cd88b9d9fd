package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/normanking/leaseguard/pkg/lease"
)

// ═══════════════════════════════════════════════════════════════════════════════
// UPLOAD VALIDATION
// ═══════════════════════════════════════════════════════════════════════════════

// MaxUploadBytes is the hard ceiling on document size (10 MB).
// Larger files are rejected before any bytes leave the machine.
const MaxUploadBytes = 10 * 1024 * 1024

// acceptedExtensions lists the media the analyzer handles: PDFs plus
// the raster image formats the OCR pipeline accepts.
var acceptedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tiff": "image/tiff",
	".bmp":  "image/bmp",
}

// AcceptedExtensions returns the supported file extensions in display
// order.
func AcceptedExtensions() []string {
	return []string{".pdf", ".jpg", ".jpeg", ".png", ".tiff", ".bmp"}
}

// ValidateUpload checks that the file at path is an acceptable lease
// document: a supported format under the size ceiling.
func ValidateUpload(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := acceptedExtensions[ext]; !ok {
		return fmt.Errorf("unsupported file type %q, accepted: %s",
			ext, strings.Join(AcceptedExtensions(), ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxUploadBytes {
		return fmt.Errorf("file is %.1f MB, the limit is %d MB",
			float64(info.Size())/(1024*1024), MaxUploadBytes/(1024*1024))
	}

	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// DOCUMENT ANALYSIS
// ═══════════════════════════════════════════════════════════════════════════════

// AnalyzeDocument uploads the lease document at path and returns the
// server's analysis. The server extracts clauses, compares them
// against tenant-protection rules, and answers with the flagged
// violations. Validation runs first so oversized or unsupported files
// never start a transfer.
func (c *Client) AnalyzeDocument(ctx context.Context, path string) (*lease.Analysis, error) {
	if err := ValidateUpload(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	// Stream the multipart body through a pipe instead of buffering
	// the whole document in memory.
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/api/upload", pr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("op", "upload").
		Str("file", filepath.Base(path)).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("upload request finished")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, extractError(resp.Body, "Upload failed")
	}

	var analysis lease.Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &analysis, nil
}
