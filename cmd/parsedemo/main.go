package main

// Parse a resume file from the command line without the HTTP server:
//   go run ./cmd/parsedemo -in ./testdata/resume.pdf
//   cat resume.txt | go run ./cmd/parsedemo

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"careerprep-backend/internal/extract"
	"careerprep-backend/internal/parse"
	"careerprep-backend/internal/shared/config"
	"careerprep-backend/internal/skills"
)

func main() {
	inPath := flag.String("in", "", "input file (pdf, docx or txt); reads stdin as text when empty")
	flag.Parse()

	cfg := config.Load()
	svc := &parse.Service{
		Cascade: extract.NewCascade(extract.Config{
			MinTextChars:  cfg.ExtractMinTextChars,
			TikaServerURL: cfg.TikaServerURL,
			TikaTimeout:   30 * time.Second,
		}),
		Matcher: skills.NewMatcher(skills.DefaultTaxonomy(), skills.MatcherConfig{
			ContextWindow: cfg.SkillContextWindow,
			SectionWindow: cfg.SkillSectionWindow,
		}),
	}

	ctx := context.Background()
	p, err := run(ctx, svc, *inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
		os.Exit(1)
	}

	payload, err := json.MarshalIndent(p.Result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(payload))
}

func run(ctx context.Context, svc *parse.Service, inPath string) (parse.Parse, error) {
	if inPath == "" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return parse.Parse{}, err
		}
		return svc.ParseText(ctx, "demo", string(text))
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return parse.Parse{}, err
	}
	return svc.ParseUpload(ctx, "demo", filepath.Base(inPath), mimeForExt(inPath), data)
}

func mimeForExt(path string) string {
	switch filepath.Ext(path) {
	case ".pdf":
		return extract.MimePDF
	case ".docx":
		return extract.MimeDOCX
	default:
		return extract.MimeText
	}
}
