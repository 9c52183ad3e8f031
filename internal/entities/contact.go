package entities

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe     = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe     = regexp.MustCompile(`(\+?\d{1,3}[\s\-.]?)?(\(?\d{3}\)?[\s\-.]?)\d{3}[\s\-.]?\d{4}`)
	linkedinRe  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+/?`)
	githubRe    = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9\-_]+/?`)
	portfolioRe = regexp.MustCompile(`(?i)https?://[A-Za-z0-9.\-]+\.[A-Za-z]{2,}(?:/[^\s]*)?`)
	locationRe  = regexp.MustCompile(`^[A-Z][A-Za-z.\- ]+,\s*[A-Z][A-Za-z.\- ]+$`)
)

// ExtractContact pulls the contact block from the resume header region. It
// scans contactText when the segmenter found a contact section, otherwise the
// first lines of the full text. Confidence scales with how many fields
// matched; missing fields produce warnings, never errors.
func ExtractContact(fullText, contactText string) (PersonalInfo, float64, []string) {
	scan := contactText
	if strings.TrimSpace(scan) == "" {
		scan = headRegion(fullText, 12)
	}

	var info PersonalInfo
	info.Email = emailRe.FindString(scan)
	info.LinkedIn = strings.TrimRight(linkedinRe.FindString(scan), "/")
	info.GitHub = strings.TrimRight(githubRe.FindString(scan), "/")
	info.Phone = findPhone(scan, info.Email)
	info.Name = findName(fullText)
	info.Location = findLocation(scan, info.Name)
	info.Portfolio = findPortfolio(scan, info.LinkedIn, info.GitHub)

	matched := 0
	var warnings []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", info.Name},
		{"email", info.Email},
		{"phone", info.Phone},
	} {
		if f.value != "" {
			matched++
		} else {
			warnings = append(warnings, "contact: no "+f.name+" found")
		}
	}
	// Links and location are nice-to-have; they nudge confidence but do not warn.
	for _, v := range []string{info.Location, info.LinkedIn, info.GitHub} {
		if v != "" {
			matched++
		}
	}

	conf := float64(matched) / 6.0
	if conf > 1 {
		conf = 1
	}
	return info, conf, warnings
}

// headRegion returns the first n non-blank lines of text.
func headRegion(text string, n int) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= n {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// findName takes the first non-empty line when it looks like a person's
// name: two to four capitalized words, no digits, no @.
func findName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		candidate := strings.TrimSpace(line)
		if candidate == "" {
			continue
		}
		if looksLikeName(candidate) {
			return candidate
		}
		return ""
	}
	return ""
}

func looksLikeName(s string) bool {
	if strings.ContainsAny(s, "@0123456789/|•") {
		return false
	}
	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r := []rune(w)
		if !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}

// findPhone avoids mistaking digit runs inside emails or URLs for a phone.
func findPhone(scan, email string) string {
	cleaned := scan
	if email != "" {
		cleaned = strings.ReplaceAll(cleaned, email, " ")
	}
	match := strings.TrimSpace(phoneRe.FindString(cleaned))
	return match
}

func findLocation(scan, name string) string {
	for _, line := range strings.Split(scan, "\n") {
		candidate := strings.TrimSpace(line)
		if candidate == "" || candidate == name {
			continue
		}
		// "City, State" or "City, Country" shaped lines only.
		for _, part := range strings.Split(candidate, "|") {
			part = strings.TrimSpace(part)
			if locationRe.MatchString(part) {
				return part
			}
		}
	}
	return ""
}

// findPortfolio returns the first URL that is neither the LinkedIn nor the
// GitHub profile.
func findPortfolio(scan, linkedin, github string) string {
	for _, url := range portfolioRe.FindAllString(scan, -1) {
		trimmed := strings.TrimRight(url, "/")
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return trimmed
	}
	return ""
}
