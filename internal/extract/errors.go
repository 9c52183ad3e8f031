package extract

import "strings"

// Attempt records why one strategy failed to produce acceptable text.
type Attempt struct {
	Strategy string `json:"strategy"`
	Reason   string `json:"reason"`
}

// UnreadableError means every applicable strategy failed or produced text
// below the acceptance threshold. This usually signals a scanned or
// image-only document; callers should ask the user to paste text manually
// rather than retry.
type UnreadableError struct {
	Mime     string
	Attempts []Attempt
}

func (e *UnreadableError) Error() string {
	var b strings.Builder
	b.WriteString("document unreadable")
	if e.Mime != "" {
		b.WriteString(" (" + e.Mime + ")")
	}
	for _, a := range e.Attempts {
		b.WriteString("; " + a.Strategy + ": " + a.Reason)
	}
	return b.String()
}
