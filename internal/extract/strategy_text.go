package extract

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// plainText accepts pasted or pre-extracted text as-is.
type plainText struct{}

func (s *plainText) Name() string { return "plain-text" }

func (s *plainText) Supports(mimeType string) bool {
	return mimeType == MimeText || strings.HasPrefix(mimeType, "text/")
}

func (s *plainText) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.New("payload is not valid utf-8 text")
	}
	return string(data), nil
}
