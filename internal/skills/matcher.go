package skills

import (
	"sort"
	"strings"
)

// Confidence buckets for matched skills.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Source records where a skill was found.
type Source string

const (
	SourceResume Source = "Resume"
	SourceJD     Source = "JD"
	SourceBoth   Source = "Both"
)

// Mention is the raw match signal for one skill in one text.
type Mention struct {
	Frequency  int
	HasContext bool
}

// Record is a fully resolved skill match.
type Record struct {
	Name       string     `json:"name"`
	Category   Category   `json:"category"`
	Confidence Confidence `json:"confidence"`
	Source     Source     `json:"source"`
	Frequency  int        `json:"frequency"`
	InResume   bool       `json:"inResume"`
	InJD       bool       `json:"inJd"`
	Selected   bool       `json:"isSelected"`
}

// MatcherConfig holds the matcher's tunable windows, in characters.
type MatcherConfig struct {
	// ContextWindow is how far around a skill mention to look for an
	// action keyword.
	ContextWindow int
	// SectionWindow is how far after a skills-section header a mention
	// still counts as contextually supported.
	SectionWindow int
}

// DefaultMatcherConfig mirrors the documented defaults.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{ContextWindow: 50, SectionWindow: 500}
}

// Matcher matches free-form text against an immutable skill taxonomy. It is
// stateless per call and safe for concurrent use.
type Matcher struct {
	taxonomy []Definition
	cfg      MatcherConfig
}

// NewMatcher builds a matcher over the given taxonomy. The taxonomy slice is
// not copied; callers must not mutate it afterwards.
func NewMatcher(taxonomy []Definition, cfg MatcherConfig) *Matcher {
	if cfg.ContextWindow <= 0 {
		cfg.ContextWindow = 50
	}
	if cfg.SectionWindow <= 0 {
		cfg.SectionWindow = 500
	}
	return &Matcher{taxonomy: taxonomy, cfg: cfg}
}

// contextKeywords are action verbs and proficiency phrases whose proximity
// to a mention boosts confidence.
var contextKeywords = []string{
	"built", "developed", "implemented", "designed", "created", "engineered",
	"deployed", "maintained", "optimized", "migrated", "automated", "led",
	"using", "proficient in", "experienced in", "expertise in",
	"worked with", "hands-on", "skilled in",
}

// skillSectionHeaders mark the start of a skills block; mentions shortly
// after one are contextually supported.
var skillSectionHeaders = []string{
	"skills", "technical skills", "tech stack", "technologies",
	"core competencies",
}

// Match scans text for every taxonomy skill and returns the mention signal
// per canonical name. Frequency is the sum of whole-word canonical and
// synonym matches plus keyword substring matches.
func (m *Matcher) Match(text string) map[string]Mention {
	out := make(map[string]Mention)
	if strings.TrimSpace(text) == "" {
		return out
	}
	lower := strings.ToLower(text)
	sectionStarts := headerPositions(lower)

	for _, def := range m.taxonomy {
		freq := 0
		hasContext := false

		terms := make([]string, 0, len(def.Synonyms)+1)
		terms = append(terms, strings.ToLower(def.Name))
		for _, syn := range def.Synonyms {
			terms = append(terms, strings.ToLower(syn))
		}
		for _, term := range terms {
			positions := wholeWordPositions(lower, term)
			freq += len(positions)
			if !hasContext {
				for _, pos := range positions {
					if m.supported(lower, pos, len(term), sectionStarts) {
						hasContext = true
						break
					}
				}
			}
		}
		for _, kw := range def.Keywords {
			freq += strings.Count(lower, strings.ToLower(kw))
		}

		if freq > 0 {
			out[def.Name] = Mention{Frequency: freq, HasContext: hasContext}
		}
	}
	return out
}

// Technologies returns the canonical names of technical skills mentioned in
// text, sorted alphabetically. Soft skills are excluded; this feeds the
// technology lists on experience and project records.
func (m *Matcher) Technologies(text string) []string {
	mentions := m.Match(text)
	out := make([]string, 0, len(mentions))
	for _, def := range m.taxonomy {
		if def.Category == CategorySoft {
			continue
		}
		if _, ok := mentions[def.Name]; ok {
			out = append(out, def.Name)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// ProcessExtraction unions resume and job-description matches into scored,
// deduplicated records with a stable ordering: fixed category order, then
// confidence High→Low, then name.
func (m *Matcher) ProcessExtraction(resumeText, jdText string) []Record {
	resumeMentions := m.Match(resumeText)
	jdMentions := m.Match(jdText)

	var out []Record
	for _, def := range m.taxonomy {
		res, inResume := resumeMentions[def.Name]
		jd, inJD := jdMentions[def.Name]
		if !inResume && !inJD {
			continue
		}

		source := SourceResume
		switch {
		case inResume && inJD:
			source = SourceBoth
		case inJD:
			source = SourceJD
		}

		// Resume signal drives confidence when present; JD-only skills are
		// scored on the JD mention.
		signal := res
		if !inResume {
			signal = jd
		}

		out = append(out, Record{
			Name:       def.Name,
			Category:   def.Category,
			Confidence: scoreConfidence(signal),
			Source:     source,
			Frequency:  signal.Frequency,
			InResume:   inResume,
			InJD:       inJD,
			Selected:   inResume,
		})
	}

	sortRecords(out)
	return out
}

func scoreConfidence(m Mention) Confidence {
	switch {
	case m.Frequency >= 3 || (m.Frequency >= 2 && m.HasContext):
		return ConfidenceHigh
	case m.Frequency >= 2 || (m.Frequency >= 1 && m.HasContext):
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func confidenceRank(c Confidence) int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	default:
		return 1
	}
}

func categoryRank(c Category) int {
	for i, cat := range CategoryOrder {
		if cat == c {
			return i
		}
	}
	return len(CategoryOrder)
}

func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if categoryRank(a.Category) != categoryRank(b.Category) {
			return categoryRank(a.Category) < categoryRank(b.Category)
		}
		if confidenceRank(a.Confidence) != confidenceRank(b.Confidence) {
			return confidenceRank(a.Confidence) > confidenceRank(b.Confidence)
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// supported reports whether the mention at pos has context: an action
// keyword within the configured window, or a skills-section header shortly
// before it.
func (m *Matcher) supported(lower string, pos, termLen int, sectionStarts []int) bool {
	for _, start := range sectionStarts {
		if pos >= start && pos-start <= m.cfg.SectionWindow {
			return true
		}
	}

	winStart := pos - m.cfg.ContextWindow
	if winStart < 0 {
		winStart = 0
	}
	winEnd := pos + termLen + m.cfg.ContextWindow
	if winEnd > len(lower) {
		winEnd = len(lower)
	}
	window := lower[winStart:winEnd]
	for _, kw := range contextKeywords {
		if containsWholeWord(window, kw) {
			return true
		}
	}
	return false
}

func headerPositions(lower string) []int {
	var out []int
	offset := 0
	for _, line := range strings.Split(lower, "\n") {
		trimmed := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), ":"))
		for _, header := range skillSectionHeaders {
			if trimmed == header {
				out = append(out, offset)
				break
			}
		}
		offset += len(line) + 1
	}
	return out
}

// wholeWordPositions finds start offsets of term in lower with word
// boundaries on both sides. '+' and '#' count as word characters so "c"
// does not match inside "c++" or "c#".
func wholeWordPositions(lower, term string) []int {
	if term == "" {
		return nil
	}
	var out []int
	from := 0
	for {
		idx := strings.Index(lower[from:], term)
		if idx < 0 {
			return out
		}
		pos := from + idx
		if isBoundary(lower, pos-1) && isBoundary(lower, pos+len(term)) {
			out = append(out, pos)
		}
		from = pos + len(term)
	}
}

func containsWholeWord(lower, term string) bool {
	return len(wholeWordPositions(lower, term)) > 0
}

func isBoundary(s string, idx int) bool {
	if idx < 0 || idx >= len(s) {
		return true
	}
	c := s[idx]
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return false
	}
	return c != '+' && c != '#'
}
