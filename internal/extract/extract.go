package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// Result is the outcome of a successful cascade run: normalized text, the
// strategy that produced it, and a cheap quality signal over the text.
type Result struct {
	Text    string
	Method  string
	Quality float64
}

// Strategy is one way of pulling plain text out of a document payload.
// Strategies are tried in priority order; a strategy either returns text or
// an error, and never inspects other strategies' output.
type Strategy interface {
	Name() string
	Supports(mimeType string) bool
	Extract(ctx context.Context, data []byte) (string, error)
}

// Config holds cascade tunables.
type Config struct {
	// MinTextChars is the minimum trimmed length for a strategy result to
	// be accepted. Shorter output falls through to the next strategy.
	MinTextChars int
	// TikaServerURL enables the OCR fallback strategy when non-empty.
	TikaServerURL string
	TikaTimeout   time.Duration
}

// Cascade tries an ordered list of extraction strategies until one yields
// acceptable text.
type Cascade struct {
	strategies []Strategy
	minChars   int
}

// NewCascade builds the default strategy order: PDF text layer first, then
// layout-aware rendering, then remote OCR (when configured); DOCX container
// extraction and plain-text passthrough handle the other MIME types.
func NewCascade(cfg Config) *Cascade {
	if cfg.MinTextChars <= 0 {
		cfg.MinTextChars = 50
	}
	strategies := []Strategy{
		&pdfTextLayer{},
		&pdfLayout{},
	}
	if strings.TrimSpace(cfg.TikaServerURL) != "" {
		strategies = append(strategies, newTikaOCR(cfg.TikaServerURL, cfg.TikaTimeout))
	}
	strategies = append(strategies, &docxContainer{}, &plainText{})
	return &Cascade{strategies: strategies, minChars: cfg.MinTextChars}
}

// NewCascadeWithStrategies builds a cascade over an explicit strategy list.
func NewCascadeWithStrategies(minChars int, strategies ...Strategy) *Cascade {
	if minChars <= 0 {
		minChars = 50
	}
	return &Cascade{strategies: strategies, minChars: minChars}
}

// Extract runs the cascade for the given payload. The first strategy whose
// normalized output meets the minimum length wins; if none does, the
// accumulated per-strategy failures come back as *UnreadableError.
func (c *Cascade) Extract(ctx context.Context, data []byte, mimeType, fileName string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	mime := NormalizeMimeType(mimeType, fileName, data)
	unreadable := &UnreadableError{Mime: mime}

	tried := 0
	for _, s := range c.strategies {
		if !s.Supports(mime) {
			continue
		}
		tried++
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		raw, err := s.Extract(ctx, data)
		if err != nil {
			unreadable.Attempts = append(unreadable.Attempts, Attempt{Strategy: s.Name(), Reason: err.Error()})
			continue
		}
		text := Normalize(raw)
		if len(strings.TrimSpace(text)) < c.minChars {
			unreadable.Attempts = append(unreadable.Attempts, Attempt{
				Strategy: s.Name(),
				Reason:   belowThresholdReason(text, c.minChars),
			})
			continue
		}
		return Result{Text: text, Method: s.Name(), Quality: PrintableRatio(text)}, nil
	}

	if tried == 0 {
		unreadable.Attempts = append(unreadable.Attempts, Attempt{
			Strategy: "none",
			Reason:   "unsupported mime type: " + mime,
		})
	}
	return Result{}, unreadable
}

// NormalizeMimeType lowercases the declared MIME type and resolves generic
// zip payloads to the OOXML type implied by the archive contents or the
// file extension.
func NormalizeMimeType(mimeType, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean == "" && utf8.Valid(data) {
		clean = MimeText
	}
	if clean != "application/zip" {
		return clean
	}

	if mapped := mapOOXMLFromZip(data); mapped != "" {
		return mapped
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".docx":
		return MimeDOCX
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	default:
		return clean
	}
}

func mapOOXMLFromZip(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		switch name {
		case "word/document.xml":
			return MimeDOCX
		case "xl/workbook.xml":
			return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		case "ppt/presentation.xml":
			return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
		}
	}
	return ""
}

func belowThresholdReason(text string, min int) string {
	n := len(strings.TrimSpace(text))
	if n == 0 {
		return "no text extracted"
	}
	return "extracted text below minimum length"
}
