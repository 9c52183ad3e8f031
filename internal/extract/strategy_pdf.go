package extract

import (
	"bytes"
	"context"
	"io"

	"github.com/ledongthuc/pdf"
)

// pdfTextLayer reads the embedded text layer directly. Cheapest and most
// faithful when the PDF was produced from a text source.
type pdfTextLayer struct{}

func (s *pdfTextLayer) Name() string { return "pdf-text-layer" }

func (s *pdfTextLayer) Supports(mimeType string) bool { return mimeType == MimePDF }

func (s *pdfTextLayer) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
