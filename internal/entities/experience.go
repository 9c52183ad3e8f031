package entities

import (
	"regexp"
	"strings"
)

// dateRange captures "Jan 2022 - Present", "2019 – 2021", "March 2020 to
// June 2021" and similar.
var dateRangeRe = regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2}|present|current|now)`)

var bulletPrefixRe = regexp.MustCompile(`^[\s]*[•·▪◦*\-–]\s+`)

// ExtractExperience parses the experience section into job entries. Each
// entry is anchored on a line carrying a date range; the title and company
// come from that line or the one before it, and everything up to the next
// anchor becomes bullets.
func ExtractExperience(text string, lookup TechnologyLookup) ([]ExperienceItem, float64, []string) {
	if lookup == nil {
		lookup = noopLookup{}
	}
	lines := strings.Split(text, "\n")

	var anchors []int
	for i, line := range lines {
		if dateRangeRe.MatchString(line) {
			anchors = append(anchors, i)
		}
	}
	if len(anchors) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil, 0, nil
		}
		return nil, 0.2, []string{"experience: no dated entries found"}
	}

	var items []ExperienceItem
	var warnings []string
	for ai, anchor := range anchors {
		end := len(lines)
		if ai+1 < len(anchors) {
			end = anchors[ai+1]
		}

		item := parseExperienceHeader(lines, anchor)
		for i := anchor + 1; i < end; i++ {
			bullet := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(lines[i], ""))
			if bullet == "" {
				continue
			}
			item.Bullets = append(item.Bullets, bullet)
		}
		item.Technologies = lookup.Technologies(strings.Join(lines[anchor:end], "\n"))

		if item.Title == "" && item.Company == "" {
			warnings = append(warnings, "experience: dated entry without title or company")
		}
		items = append(items, item)
	}

	conf := scoreExperience(items)
	return items, conf, warnings
}

// parseExperienceHeader reads the anchor line (and the preceding line when
// the anchor holds only dates) for title, company and location.
func parseExperienceHeader(lines []string, anchor int) ExperienceItem {
	var item ExperienceItem
	line := lines[anchor]

	m := dateRangeRe.FindStringSubmatch(line)
	if m != nil {
		item.StartDate = strings.TrimSpace(m[1])
		item.EndDate = normalizeEndDate(m[2])
	}

	head := strings.TrimSpace(dateRangeRe.ReplaceAllString(line, ""))
	head = strings.Trim(head, " ,|()–—-")
	if head == "" && anchor > 0 {
		head = strings.TrimSpace(lines[anchor-1])
	}
	item.Title, item.Company, item.Location = splitRole(head)
	return item
}

// splitRole breaks "Software Engineer at Acme Corp" or
// "Software Engineer | Acme Corp | Remote" into its parts. A lone segment is
// treated as the title.
func splitRole(head string) (title, company, location string) {
	if head == "" {
		return "", "", ""
	}
	var parts []string
	switch {
	case strings.Contains(head, " at "):
		parts = strings.SplitN(head, " at ", 2)
	case strings.Contains(head, " | "):
		parts = strings.Split(head, " | ")
	case strings.Contains(head, ", "):
		parts = strings.SplitN(head, ", ", 2)
	case strings.Contains(head, " - "):
		parts = strings.SplitN(head, " - ", 2)
	default:
		parts = []string{head}
	}
	for i := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(parts[i]), ",|–—-")
	}
	title = parts[0]
	if len(parts) > 1 {
		company = parts[1]
	}
	if len(parts) > 2 {
		location = parts[2]
	}
	return title, company, location
}

func normalizeEndDate(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "present" || lower == "current" || lower == "now" {
		return "Present"
	}
	return strings.TrimSpace(raw)
}

// scoreExperience rewards complete entries: dates always exist (they are the
// anchor), so completeness hinges on titles, companies and bullets.
func scoreExperience(items []ExperienceItem) float64 {
	if len(items) == 0 {
		return 0
	}
	total := 0.0
	for _, it := range items {
		score := 0.4
		if it.Title != "" {
			score += 0.2
		}
		if it.Company != "" {
			score += 0.2
		}
		if len(it.Bullets) > 0 {
			score += 0.2
		}
		total += score
	}
	return total / float64(len(items))
}
