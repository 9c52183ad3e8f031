package parse

import (
	"strings"

	"careerprep-backend/internal/entities"
)

// The legacy formatter renders structured entries back into the flat string
// lists older clients consume. All functions are pure and idempotent over
// their structured input, and always return a non-nil slice so the JSON shape
// stays an array.

// FormatExperience renders one "{title} at {company} ({start} - {end})"
// entry per item.
func FormatExperience(items []entities.ExperienceItem) []string {
	lines := []string{}
	for _, it := range items {
		head := it.Title
		if it.Company != "" {
			if head != "" {
				head += " at " + it.Company
			} else {
				head = it.Company
			}
		}
		if head == "" {
			continue
		}
		if it.StartDate != "" || it.EndDate != "" {
			head += " (" + it.StartDate + " - " + it.EndDate + ")"
		}
		lines = append(lines, head)
	}
	return lines
}

// FormatEducation renders one "{degree}, {institution} ({startYear} -
// {endYear})" entry per item.
func FormatEducation(items []entities.EducationItem) []string {
	lines := []string{}
	for _, it := range items {
		head := it.Degree
		if it.Institution != "" {
			if head != "" {
				head += ", " + it.Institution
			} else {
				head = it.Institution
			}
		}
		if head == "" {
			continue
		}
		if it.StartYear != "" && it.EndYear != "" {
			head += " (" + it.StartYear + " - " + it.EndYear + ")"
		} else if it.EndYear != "" {
			head += " (" + it.EndYear + ")"
		}
		lines = append(lines, head)
	}
	return lines
}

// FormatSkills returns one deduplicated list of skill names, dropping
// case-insensitive duplicates. The first occurrence wins so the caller's
// ordering is kept.
func FormatSkills(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := []string{}
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

// FormatProjects renders one "{name}: {description}" entry per item.
func FormatProjects(items []entities.ProjectItem) []string {
	lines := []string{}
	for _, it := range items {
		if it.Name == "" {
			continue
		}
		line := it.Name
		desc := it.Description
		if desc == "" && len(it.Bullets) > 0 {
			desc = it.Bullets[0]
		}
		if desc != "" {
			line += ": " + desc
		}
		lines = append(lines, line)
	}
	return lines
}

// FormatAchievements returns the achievement texts, one entry per item.
func FormatAchievements(items []entities.Achievement) []string {
	lines := []string{}
	for _, it := range items {
		if it.Text == "" {
			continue
		}
		lines = append(lines, it.Text)
	}
	return lines
}

// FormatContact renders the non-empty contact fields one per line, in a
// fixed order.
func FormatContact(info entities.PersonalInfo) string {
	var lines []string
	for _, v := range []string{info.Name, info.Email, info.Phone, info.Location, info.LinkedIn, info.GitHub, info.Portfolio} {
		if v != "" {
			lines = append(lines, v)
		}
	}
	return strings.Join(lines, "\n")
}
