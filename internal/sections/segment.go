package sections

import (
	"regexp"
	"strings"
)

// Segmenter confidence levels. Exact canonical headers score highest,
// synonyms lower, content-inferred spans lowest.
const (
	confCanonical = 0.9
	confSynonym   = 0.75
	confInferred  = 0.5
)

const maxHeaderLen = 48
const maxHeaderWords = 4

type headerVocab struct {
	section   Type
	canonical []string
	synonyms  []string
}

// vocab is the closed header vocabulary, kept in canonical section order so
// scanning is deterministic.
var vocab = []headerVocab{
	{Contact, []string{"contact"}, []string{"contact information", "contact info", "personal details", "personal information"}},
	{Summary, []string{"summary"}, []string{"professional summary", "career summary", "profile", "objective", "about", "about me"}},
	{Experience, []string{"experience"}, []string{"work experience", "professional experience", "work history", "employment", "employment history", "career history"}},
	{Education, []string{"education"}, []string{"academic background", "academics", "qualifications", "educational qualifications", "degrees"}},
	{Skills, []string{"skills"}, []string{"technical skills", "tech stack", "technologies", "core competencies", "competencies", "expertise"}},
	{Projects, []string{"projects"}, []string{"personal projects", "academic projects", "selected projects", "portfolio"}},
	{Achievements, []string{"achievements"}, []string{"accomplishments", "awards", "honors", "awards and honors", "recognition"}},
	{Certifications, []string{"certifications"}, []string{"certificates", "certifications and licenses", "licenses", "courses", "training"}},
}

var headerTrim = regexp.MustCompile(`[:\-–—_|•·\s]+$`)

type headerMatch struct {
	section    Type
	confidence float64
	lineStart  int // offset of the header line itself
	bodyStart  int // offset just past the header line
}

// Segment partitions normalized text into labeled spans. It never fails;
// text with no recognizable headers yields inferred spans at best, or none.
func Segment(text string) []Span {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	headers := findHeaders(text)
	spans := buildSpans(text, headers)
	if !hasType(spans, Experience) {
		if inferred, ok := inferExperience(text, spans); ok {
			spans = insertSpan(spans, inferred)
		}
	}
	return spans
}

func findHeaders(text string) []headerMatch {
	var out []headerMatch
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		lineStart := offset
		offset += len(line) + 1

		section, conf, ok := classifyHeader(line)
		if !ok {
			continue
		}
		out = append(out, headerMatch{
			section:    section,
			confidence: conf,
			lineStart:  lineStart,
			bodyStart:  min(offset, len(text)),
		})
	}
	return out
}

// classifyHeader decides whether a line is a section header. Headers must be
// short and header-like; full sentences never qualify.
func classifyHeader(line string) (Type, float64, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return "", 0, false
	}
	cleaned := headerTrim.ReplaceAllString(trimmed, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" || len(strings.Fields(cleaned)) > maxHeaderWords {
		return "", 0, false
	}
	lower := strings.ToLower(cleaned)

	for _, v := range vocab {
		for _, name := range v.canonical {
			if lower == name {
				return v.section, confCanonical, true
			}
		}
	}
	for _, v := range vocab {
		for _, syn := range v.synonyms {
			if lower == syn {
				return v.section, confSynonym, true
			}
		}
	}
	return "", 0, false
}

// buildSpans turns accepted headers into spans. A header with no content
// before the next header is dropped.
func buildSpans(text string, headers []headerMatch) []Span {
	var out []Span
	for i, h := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1].lineStart
		}
		body := ""
		if h.bodyStart < end {
			body = text[h.bodyStart:end]
		}
		if strings.TrimSpace(body) == "" {
			continue
		}
		out = append(out, Span{
			Type:       h.section,
			Start:      h.bodyStart,
			End:        end,
			Confidence: h.confidence,
		})
	}
	return out
}

var dateRangeLine = regexp.MustCompile(`(?i)((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\b(19|20)\d{2}\b)\s*(-|–|—|to)\s*((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\b(19|20)\d{2}\b|present|current|now)`)

// inferExperience guesses an experience span from a cluster of date-ranged
// lines when no explicit header exists. Confidence is deliberately low.
func inferExperience(text string, existing []Span) (Span, bool) {
	first := -1
	count := 0
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		lineStart := offset
		offset += len(line) + 1
		if !dateRangeLine.MatchString(line) {
			continue
		}
		if insideAnySpan(existing, lineStart) {
			continue
		}
		count++
		if first < 0 {
			first = lineStart
		}
	}
	if count < 2 || first < 0 {
		return Span{}, false
	}
	end := len(text)
	for _, s := range existing {
		if s.Start > first && s.Start < end {
			end = s.Start
		}
	}
	return Span{Type: Experience, Start: first, End: end, Confidence: confInferred}, true
}

func insideAnySpan(spans []Span, pos int) bool {
	for _, s := range spans {
		if pos >= s.Start && pos < s.End {
			return true
		}
	}
	return false
}

func hasType(spans []Span, t Type) bool {
	for _, s := range spans {
		if s.Type == t {
			return true
		}
	}
	return false
}

func insertSpan(spans []Span, s Span) []Span {
	out := make([]Span, 0, len(spans)+1)
	inserted := false
	for _, existing := range spans {
		if !inserted && s.Start < existing.Start {
			out = append(out, s)
			inserted = true
		}
		out = append(out, existing)
	}
	if !inserted {
		out = append(out, s)
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
