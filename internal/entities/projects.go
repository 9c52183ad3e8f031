package entities

import (
	"regexp"
	"strings"
)

var projectURLRe = regexp.MustCompile(`(?i)https?://[^\s)]+`)

// ExtractProjects parses the projects section. Unlike experience, entries
// have no date anchor: a short non-bullet line starts a new project and the
// bullet or prose lines beneath it describe it.
func ExtractProjects(text string, lookup TechnologyLookup) ([]ProjectItem, float64, []string) {
	if lookup == nil {
		lookup = noopLookup{}
	}
	lines := strings.Split(text, "\n")

	var items []ProjectItem
	var current *ProjectItem
	var block []string

	flush := func() {
		if current == nil {
			return
		}
		current.Technologies = lookup.Technologies(strings.Join(block, "\n"))
		items = append(items, *current)
		current = nil
		block = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bulletPrefixRe.MatchString(line) {
			if current != nil {
				current.Bullets = append(current.Bullets, strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, "")))
				block = append(block, trimmed)
			}
			continue
		}
		if isProjectTitle(trimmed) {
			flush()
			name, url := splitProjectTitle(trimmed)
			current = &ProjectItem{Name: name, URL: url}
			block = []string{trimmed}
			continue
		}
		if current != nil {
			if current.Description == "" {
				current.Description = trimmed
			} else {
				current.Description += " " + trimmed
			}
			block = append(block, trimmed)
		}
	}
	flush()

	if len(items) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil, 0, nil
		}
		return nil, 0.2, []string{"projects: no project entries found"}
	}
	return items, scoreProjects(items), nil
}

// ProjectCandidateLines pulls title-and-bullet blocks around lines that
// mention a project out of a resume with no projects section.
func ProjectCandidateLines(text string) string {
	lines := strings.Split(text, "\n")
	var keep []string
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || !strings.Contains(strings.ToLower(trimmed), "project") {
			continue
		}
		if !isProjectTitle(trimmed) {
			continue
		}
		keep = append(keep, lines[i])
		for i+1 < len(lines) && bulletPrefixRe.MatchString(lines[i+1]) {
			keep = append(keep, lines[i+1])
			i++
		}
	}
	return strings.Join(keep, "\n")
}

// isProjectTitle accepts short standalone lines that do not read like a
// sentence.
func isProjectTitle(line string) bool {
	if len(line) > 80 {
		return false
	}
	if strings.HasSuffix(line, ".") {
		return false
	}
	return len(strings.Fields(stripProjectURL(line))) <= 8
}

func splitProjectTitle(line string) (name, url string) {
	url = projectURLRe.FindString(line)
	name = strings.Trim(strings.TrimSpace(stripProjectURL(line)), " -–—|•():")
	return name, url
}

func stripProjectURL(line string) string {
	return projectURLRe.ReplaceAllString(line, "")
}

func scoreProjects(items []ProjectItem) float64 {
	total := 0.0
	for _, it := range items {
		score := 0.5
		if it.Description != "" || len(it.Bullets) > 0 {
			score += 0.3
		}
		if len(it.Technologies) > 0 {
			score += 0.2
		}
		total += score
	}
	return total / float64(len(items))
}
