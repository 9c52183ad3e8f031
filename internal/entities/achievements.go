package entities

import (
	"regexp"
	"strings"
)

var certIssuerRe = regexp.MustCompile(`(?:\b(?:by|from)|[-–—])\s+([A-Z][A-Za-z0-9.& ]{2,40})$`)

// certificationCues pull certificate-shaped lines out of mixed
// achievement/certification text.
var certificationCues = []string{
	"certified", "certification", "certificate", "course", "credential", "licensed",
}

// academicCues mark achievements earned in an academic setting.
var academicCues = []string{
	"dean's list", "scholarship", "gpa", "thesis", "university", "college",
	"academic", "graduated", "valedictorian", "honor roll",
}

// achievementCues mark lines that read like awards; used to pick candidate
// lines out of a resume with no achievements section.
var achievementCues = []string{
	"award", "winner", "won ", "prize", "honor", "medal", "recognized",
	"recognition", "finalist", "rank", "scholarship", "dean's list",
}

// ExtractAchievements reads one achievement per non-header line, tagging
// each with an inferred category.
func ExtractAchievements(text string) ([]Achievement, float64, []string) {
	var items []Achievement
	for _, line := range strings.Split(text, "\n") {
		entry := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
		if entry == "" {
			continue
		}
		items = append(items, Achievement{Text: entry, Category: classifyAchievement(entry)})
	}
	if len(items) == 0 {
		return nil, 0, nil
	}
	return items, 0.7, nil
}

// classifyAchievement infers the achievement category from its wording:
// certification cues win, then academic cues, and anything else is treated
// as professional.
func classifyAchievement(line string) string {
	if IsCertificationLine(line) {
		return AchievementCertification
	}
	lower := strings.ToLower(line)
	for _, cue := range academicCues {
		if strings.Contains(lower, cue) {
			return AchievementAcademic
		}
	}
	return AchievementProfessional
}

// ExtractCertifications reads one certification per line, peeling off an
// issuer ("... by Amazon", "... - Coursera") and a year when present.
func ExtractCertifications(text string) ([]Certification, float64, []string) {
	var items []Certification
	for _, line := range strings.Split(text, "\n") {
		entry := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
		if entry == "" {
			continue
		}
		var cert Certification
		cert.Year = yearRe.FindString(entry)
		if cert.Year != "" {
			entry = strings.Trim(strings.ReplaceAll(entry, cert.Year, ""), " ,()–—-")
		}
		if m := certIssuerRe.FindStringSubmatch(entry); m != nil {
			cert.Issuer = strings.TrimSpace(m[1])
			entry = strings.TrimSpace(entry[:len(entry)-len(m[0])])
		}
		cert.Name = strings.Trim(entry, " ,–—-")
		if cert.Name == "" {
			continue
		}
		items = append(items, cert)
	}
	if len(items) == 0 {
		return nil, 0, nil
	}
	return items, 0.7, nil
}

// IsCertificationLine reports whether a line reads like a certification; the
// parser uses it to classify achievements and to pick certificate candidates
// out of unsectioned text.
func IsCertificationLine(line string) bool {
	lower := strings.ToLower(line)
	for _, cue := range certificationCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// AchievementCandidateLines picks award-shaped lines out of a resume that
// has no achievements section.
func AchievementCandidateLines(text string) string {
	return filterLines(text, func(line string) bool {
		lower := strings.ToLower(line)
		for _, cue := range achievementCues {
			if strings.Contains(lower, cue) {
				return true
			}
		}
		return false
	})
}

// CertificationCandidateLines picks certificate-shaped lines out of a resume
// that has no certifications section.
func CertificationCandidateLines(text string) string {
	return filterLines(text, IsCertificationLine)
}

func filterLines(text string, keep func(string) bool) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if keep(line) {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
