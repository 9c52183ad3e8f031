package extract

import (
	"strings"
	"unicode"
)

// Normalize cleans raw extractor output into the canonical text every
// downstream stage consumes. Line endings are unified, control characters
// are stripped (newlines and tabs survive as whitespace), runs of
// whitespace inside a line collapse to one space, lines are trimmed, and
// runs of blank lines collapse to at most one.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		cleaned := cleanLine(line)
		if cleaned == "" {
			blankRun++
			if blankRun > 1 || len(out) == 0 {
				continue
			}
			out = append(out, "")
			continue
		}
		blankRun = 0
		out = append(out, cleaned)
	}

	// Drop a trailing blank line left by the run-collapse above.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func cleanLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	lastSpace := false
	for _, r := range line {
		if r == '\t' || unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		if unicode.IsControl(r) || r == '\uFEFF' || r == '\uFFFD' {
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}

// PrintableRatio reports the share of printable runes in text, a cheap
// quality signal for extracted output. Empty text scores zero.
func PrintableRatio(text string) float64 {
	if text == "" {
		return 0
	}
	total := 0
	printable := 0
	for _, r := range text {
		total++
		if r == '\n' || r == ' ' || unicode.IsGraphic(r) {
			printable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(printable) / float64(total)
}
