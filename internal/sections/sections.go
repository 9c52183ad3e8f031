package sections

// Type identifies one resume section kind.
type Type string

const (
	Contact        Type = "contact"
	Summary        Type = "summary"
	Experience     Type = "experience"
	Education      Type = "education"
	Skills         Type = "skills"
	Projects       Type = "projects"
	Achievements   Type = "achievements"
	Certifications Type = "certifications"
)

// AllTypes lists every section type in canonical order. Output ordering and
// missing-section reporting both follow this order.
var AllTypes = []Type{
	Contact,
	Summary,
	Experience,
	Education,
	Skills,
	Projects,
	Achievements,
	Certifications,
}

// Span is a contiguous region of the normalized text labeled with a section
// type. Start and End are byte offsets; End is exclusive.
type Span struct {
	Type       Type    `json:"type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
}

// Missing returns the section types with no span, in canonical order.
// Absence is a data condition worth surfacing, not an error.
func Missing(spans []Span) []Type {
	present := make(map[Type]bool, len(spans))
	for _, s := range spans {
		present[s.Type] = true
	}
	var out []Type
	for _, t := range AllTypes {
		if !present[t] {
			out = append(out, t)
		}
	}
	return out
}

// Detected returns the section types that have at least one span, in
// canonical order.
func Detected(spans []Span) []Type {
	present := make(map[Type]bool, len(spans))
	for _, s := range spans {
		present[s.Type] = true
	}
	var out []Type
	for _, t := range AllTypes {
		if present[t] {
			out = append(out, t)
		}
	}
	return out
}

// TextFor returns the text of the first span with the given type, if any.
func TextFor(text string, spans []Span, t Type) (string, bool) {
	for _, s := range spans {
		if s.Type != t {
			continue
		}
		if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
			return "", false
		}
		return text[s.Start:s.End], true
	}
	return "", false
}

// ConfidenceFor returns the confidence of the first span with the given type.
func ConfidenceFor(spans []Span, t Type) float64 {
	for _, s := range spans {
		if s.Type == t {
			return s.Confidence
		}
	}
	return 0
}
