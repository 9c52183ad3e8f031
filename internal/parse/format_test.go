package parse

import (
	"reflect"
	"testing"

	"careerprep-backend/internal/entities"
)

func TestFormatExperienceEntries(t *testing.T) {
	got := FormatExperience([]entities.ExperienceItem{
		{Title: "Software Engineer", Company: "Acme Corp", StartDate: "Jan 2022", EndDate: "Present"},
		{Title: "Intern", StartDate: "2021", EndDate: "2021"},
		{Company: "Initech"},
	})
	want := []string{
		"Software Engineer at Acme Corp (Jan 2022 - Present)",
		"Intern (2021 - 2021)",
		"Initech",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatSkillsDedupKeepsFirstOccurrence(t *testing.T) {
	got := FormatSkills([]string{"Go", "React", "go", "GO", "PostgreSQL", "react"})
	want := []string{"Go", "React", "PostgreSQL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatSkillsIdempotent(t *testing.T) {
	names := []string{"Go", "React", "PostgreSQL"}
	once := FormatSkills(names)
	twice := FormatSkills(once)
	// Re-feeding the deduplicated list must not change it.
	if !reflect.DeepEqual(twice, once) {
		t.Fatalf("got %q, want %q", twice, once)
	}
}

func TestFormatEducationEntries(t *testing.T) {
	got := FormatEducation([]entities.EducationItem{
		{Degree: "B.Tech", Institution: "State University", StartYear: "2018", EndYear: "2022"},
		{Degree: "Diploma", EndYear: "2016"},
	})
	want := []string{"B.Tech, State University (2018 - 2022)", "Diploma (2016)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatContactFixedOrder(t *testing.T) {
	got := FormatContact(entities.PersonalInfo{
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Phone: "",
	})
	want := "Jane Smith\njane@example.com"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatEmptyInputs(t *testing.T) {
	if got := FormatExperience(nil); got == nil || len(got) != 0 {
		t.Fatalf("experience = %#v, want empty non-nil", got)
	}
	if got := FormatSkills(nil); got == nil || len(got) != 0 {
		t.Fatalf("skills = %#v, want empty non-nil", got)
	}
	if got := FormatAchievements(nil); got == nil || len(got) != 0 {
		t.Fatalf("achievements = %#v, want empty non-nil", got)
	}
}
