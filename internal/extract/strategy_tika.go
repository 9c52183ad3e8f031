package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTikaTimeout = 60 * time.Second

// tikaOCR sends the document to an Apache Tika server with OCR enabled.
// This is the expensive last resort for scanned PDFs and only runs when a
// server URL is configured.
type tikaOCR struct {
	serverURL string
	client    *http.Client
}

func newTikaOCR(serverURL string, timeout time.Duration) *tikaOCR {
	if timeout <= 0 {
		timeout = defaultTikaTimeout
	}
	return &tikaOCR{
		serverURL: strings.TrimRight(strings.TrimSpace(serverURL), "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

func (s *tikaOCR) Name() string { return "pdf-ocr-tika" }

func (s *tikaOCR) Supports(mimeType string) bool { return mimeType == MimePDF }

func (s *tikaOCR) Extract(ctx context.Context, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.serverURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build tika request: %w", err)
	}
	req.Header.Set("Content-Type", MimePDF)
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("X-Tika-PDFOcrStrategy", "ocr_and_text_extraction")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tika request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("tika status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read tika response: %w", err)
	}
	return string(out), nil
}
