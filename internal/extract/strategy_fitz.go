package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// pdfLayout renders each page through MuPDF, which reconstructs reading
// order for multi-column layouts that confuse plain text-layer extraction.
type pdfLayout struct{}

func (s *pdfLayout) Name() string { return "pdf-layout" }

func (s *pdfLayout) Supports(mimeType string) bool { return mimeType == MimePDF }

func (s *pdfLayout) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		if page != "" {
			b.WriteString(page)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
