package entities

import (
	"regexp"
	"strings"
)

var (
	degreeRe = regexp.MustCompile(`(?i)\b(b\.?\s?tech|b\.e\.?|b\.?sc|b\.a\.?|b\.s\.?|m\.?\s?tech|m\.?sc|m\.s\.?|m\.a\.?|mba|ph\.?d|bachelor(?:'s)?(?:\s+of\s+[a-z]+(?:\s+[a-z]+)?)?|master(?:'s)?(?:\s+of\s+[a-z]+(?:\s+[a-z]+)?)?|doctorate|diploma)\b`)
	fieldRe  = regexp.MustCompile(`(?i)\bin\s+([A-Za-z][A-Za-z&\- ]{2,40}?)(?:,|$|\()`)
	yearsRe  = regexp.MustCompile(`\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present)\b`)
	yearRe   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	gpaRe    = regexp.MustCompile(`(?i)(?:gpa|cgpa)[:\s]*(\d\.?\d{0,2})(?:\s*/\s*(?:4|10))?|(\d\.\d{1,2})\s*/\s*(?:4|10)\b`)
)

// institutionCues mark a line as naming a school.
var institutionCues = []string{
	"university", "college", "institute", "school", "academy", "polytechnic", "iit", "nit",
}

// ExtractEducation parses the education section. Entries are anchored on
// degree keywords; the institution comes from the same line or an adjacent
// one carrying an institution cue.
func ExtractEducation(text string) ([]EducationItem, float64, []string) {
	lines := strings.Split(text, "\n")

	var anchors []int
	for i, line := range lines {
		if degreeRe.MatchString(line) {
			anchors = append(anchors, i)
		}
	}
	if len(anchors) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil, 0, nil
		}
		return nil, 0.2, []string{"education: no degree keywords found"}
	}

	var items []EducationItem
	var warnings []string
	for ai, anchor := range anchors {
		end := len(lines)
		if ai+1 < len(anchors) {
			end = anchors[ai+1]
		}
		block := strings.Join(lines[anchor:end], "\n")
		line := lines[anchor]

		var item EducationItem
		item.Degree = strings.TrimSpace(degreeRe.FindString(line))
		if m := fieldRe.FindStringSubmatch(line); m != nil {
			item.Field = strings.TrimSpace(m[1])
		}
		item.Institution = findInstitution(lines, anchor, end)
		if m := yearsRe.FindStringSubmatch(block); m != nil {
			item.StartYear = m[1]
			item.EndYear = normalizeEndDate(m[2])
		} else if y := yearRe.FindString(block); y != "" {
			item.EndYear = y
		}
		if m := gpaRe.FindStringSubmatch(block); m != nil {
			if m[1] != "" {
				item.GPA = m[1]
			} else {
				item.GPA = m[2]
			}
		}

		if item.Institution == "" {
			warnings = append(warnings, "education: degree without institution")
		}
		items = append(items, item)
	}

	return items, scoreEducation(items), warnings
}

// findInstitution looks on the anchor line first, then adjacent lines within
// the entry block.
func findInstitution(lines []string, anchor, end int) string {
	candidates := []int{anchor}
	if anchor > 0 {
		candidates = append(candidates, anchor-1)
	}
	for i := anchor + 1; i < end; i++ {
		candidates = append(candidates, i)
	}
	for _, i := range candidates {
		if inst := institutionIn(lines[i]); inst != "" {
			return inst
		}
	}
	return ""
}

func institutionIn(line string) string {
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		for _, cue := range institutionCues {
			if strings.Contains(lower, cue) {
				return strings.Trim(part, " .")
			}
		}
	}
	return ""
}

func scoreEducation(items []EducationItem) float64 {
	if len(items) == 0 {
		return 0
	}
	total := 0.0
	for _, it := range items {
		score := 0.4
		if it.Institution != "" {
			score += 0.3
		}
		if it.EndYear != "" {
			score += 0.2
		}
		if it.GPA != "" || it.Field != "" {
			score += 0.1
		}
		total += score
	}
	return total / float64(len(items))
}
