package entities

import (
	"reflect"
	"strings"
	"testing"
)

type stubLookup struct{ techs []string }

func (s stubLookup) Technologies(string) []string { return s.techs }

func TestExtractContactFullHeader(t *testing.T) {
	text := `Jane Smith
San Francisco, CA | (415) 555-0123
jane.smith@example.com | linkedin.com/in/janesmith | github.com/janesmith

Experience
...`
	info, conf, warnings := ExtractContact(text, "")
	if info.Name != "Jane Smith" {
		t.Fatalf("name = %q", info.Name)
	}
	if info.Email != "jane.smith@example.com" {
		t.Fatalf("email = %q", info.Email)
	}
	if !strings.Contains(info.Phone, "555-0123") {
		t.Fatalf("phone = %q", info.Phone)
	}
	if info.Location != "San Francisco, CA" {
		t.Fatalf("location = %q", info.Location)
	}
	if info.LinkedIn != "linkedin.com/in/janesmith" || info.GitHub != "github.com/janesmith" {
		t.Fatalf("links = %q / %q", info.LinkedIn, info.GitHub)
	}
	if conf < 0.9 {
		t.Fatalf("conf = %v, want near 1 for a complete header", conf)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
}

func TestExtractContactMissingFieldsWarnsNotErrors(t *testing.T) {
	info, conf, warnings := ExtractContact("Some Body\nworked at places", "")
	if info.Email != "" || info.Phone != "" {
		t.Fatalf("unexpected matches %+v", info)
	}
	if conf <= 0 || conf >= 0.5 {
		t.Fatalf("conf = %v, want low but non-zero (name matched)", conf)
	}
	if len(warnings) != 2 {
		t.Fatalf("want warnings for email and phone, got %v", warnings)
	}
}

func TestExtractExperienceEntries(t *testing.T) {
	text := `Software Engineer at Acme Corp (Jan 2022 - Present)
• Built APIs with Node.js
• Tuned PostgreSQL queries
Backend Developer, Initech (2019 - 2021)
• Shipped the billing service`
	items, conf, warnings := ExtractExperience(text, stubLookup{techs: []string{"Node.js", "PostgreSQL"}})
	if len(items) != 2 {
		t.Fatalf("got %d items: %+v", len(items), items)
	}
	first := items[0]
	if first.Title != "Software Engineer" || first.Company != "Acme Corp" {
		t.Fatalf("header parse wrong: %+v", first)
	}
	if first.StartDate != "Jan 2022" || first.EndDate != "Present" {
		t.Fatalf("dates wrong: %+v", first)
	}
	if len(first.Bullets) != 2 {
		t.Fatalf("bullets = %v", first.Bullets)
	}
	if !reflect.DeepEqual(first.Technologies, []string{"Node.js", "PostgreSQL"}) {
		t.Fatalf("technologies = %v", first.Technologies)
	}
	if items[1].Title != "Backend Developer" || items[1].Company != "Initech" {
		t.Fatalf("second entry wrong: %+v", items[1])
	}
	if conf <= 0.5 {
		t.Fatalf("conf = %v, want > 0.5 for complete entries", conf)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
}

func TestExtractExperienceHeaderOnPrecedingLine(t *testing.T) {
	text := `Platform Engineer | Hooli
Mar 2021 - Present
• Ran the infrastructure team`
	items, _, _ := ExtractExperience(text, nil)
	if len(items) != 1 {
		t.Fatalf("got %+v", items)
	}
	if items[0].Title != "Platform Engineer" || items[0].Company != "Hooli" {
		t.Fatalf("header parse wrong: %+v", items[0])
	}
}

func TestExtractExperienceNoDates(t *testing.T) {
	items, conf, warnings := ExtractExperience("did some work once", nil)
	if items != nil || conf != 0.2 || len(warnings) != 1 {
		t.Fatalf("items=%v conf=%v warnings=%v", items, conf, warnings)
	}
}

func TestExtractEducation(t *testing.T) {
	text := "B.Tech in Computer Science, State University, 2018 - 2022\nGPA: 8.7/10"
	items, conf, warnings := ExtractEducation(text)
	if len(items) != 1 {
		t.Fatalf("got %+v", items)
	}
	it := items[0]
	if !strings.EqualFold(it.Degree, "b.tech") {
		t.Fatalf("degree = %q", it.Degree)
	}
	if it.Field != "Computer Science" {
		t.Fatalf("field = %q", it.Field)
	}
	if it.Institution != "State University" {
		t.Fatalf("institution = %q", it.Institution)
	}
	if it.StartYear != "2018" || it.EndYear != "2022" {
		t.Fatalf("years = %q - %q", it.StartYear, it.EndYear)
	}
	if it.GPA != "8.7" {
		t.Fatalf("gpa = %q", it.GPA)
	}
	if conf < 0.8 || len(warnings) != 0 {
		t.Fatalf("conf=%v warnings=%v", conf, warnings)
	}
}

func TestExtractProjects(t *testing.T) {
	text := `Inventory Tracker (https://github.com/jane/tracker)
• Real-time stock dashboard
• Offline-first sync
Chat Bot
A small bot for team standups.`
	items, conf, _ := ExtractProjects(text, stubLookup{techs: []string{"React"}})
	if len(items) != 2 {
		t.Fatalf("got %+v", items)
	}
	if items[0].Name != "Inventory Tracker" || items[0].URL != "https://github.com/jane/tracker" {
		t.Fatalf("first project wrong: %+v", items[0])
	}
	if len(items[0].Bullets) != 2 {
		t.Fatalf("bullets = %v", items[0].Bullets)
	}
	if items[1].Name != "Chat Bot" || items[1].Description == "" {
		t.Fatalf("second project wrong: %+v", items[1])
	}
	if conf <= 0 {
		t.Fatalf("conf = %v", conf)
	}
}

func TestExtractCertifications(t *testing.T) {
	text := "• AWS Certified Solutions Architect - Amazon (2023)\nDocker Essentials by Coursera"
	items, _, _ := ExtractCertifications(text)
	if len(items) != 2 {
		t.Fatalf("got %+v", items)
	}
	if items[0].Name != "AWS Certified Solutions Architect" || items[0].Issuer != "Amazon" || items[0].Year != "2023" {
		t.Fatalf("first cert wrong: %+v", items[0])
	}
	if items[1].Issuer != "Coursera" {
		t.Fatalf("second cert wrong: %+v", items[1])
	}
}

func TestExtractAchievements(t *testing.T) {
	items, conf, _ := ExtractAchievements("• Won the 2021 hackathon\n• Dean's list")
	if len(items) != 2 || conf != 0.7 {
		t.Fatalf("items=%+v conf=%v", items, conf)
	}
	if items[0].Text != "Won the 2021 hackathon" {
		t.Fatalf("text = %q", items[0].Text)
	}
}

func TestAchievementCategories(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Won the 2021 hackathon", AchievementProfessional},
		{"Dean's list, 2020 and 2021", AchievementAcademic},
		{"Merit scholarship recipient", AchievementAcademic},
		{"AWS Certified Solutions Architect", AchievementCertification},
		{"Completed an advanced Kubernetes course", AchievementCertification},
		{"Employee of the month, March 2022", AchievementProfessional},
	}
	for _, tc := range cases {
		items, _, _ := ExtractAchievements(tc.line)
		if len(items) != 1 {
			t.Fatalf("%q: items = %+v", tc.line, items)
		}
		if items[0].Category != tc.want {
			t.Fatalf("%q: category = %q, want %q", tc.line, items[0].Category, tc.want)
		}
	}
}

func TestCandidateLineFilters(t *testing.T) {
	text := "Jane Smith\nWon the regional coding prize\nAWS Certified Developer (2022)\nBuilt internal tooling"

	ach := AchievementCandidateLines(text)
	if ach != "Won the regional coding prize" {
		t.Fatalf("achievement candidates = %q", ach)
	}

	certs := CertificationCandidateLines(text)
	if certs != "AWS Certified Developer (2022)" {
		t.Fatalf("certification candidates = %q", certs)
	}
}

func TestProjectCandidateLines(t *testing.T) {
	text := "Jane Smith\nSoftware Engineer at Acme Corp (Jan 2022 - Present)\nInventory Tracker Project\n• Tracks stock with Go and PostgreSQL\nSome long sentence describing responsibilities in detail."

	got := ProjectCandidateLines(text)
	want := "Inventory Tracker Project\n• Tracks stock with Go and PostgreSQL"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
