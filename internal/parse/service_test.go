package parse

import (
	"context"
	"encoding/json"
	"testing"

	"careerprep-backend/internal/entities"
	"careerprep-backend/internal/skills"
)

const sampleResume = `Jane Smith
San Francisco, CA | (415) 555-0123
jane.smith@example.com | linkedin.com/in/janesmith

Professional Summary
Backend engineer with five years building services.

Experience
Software Engineer at Acme Corp (Jan 2022 - Present)
• Built APIs using Node.js and PostgreSQL
• Migrated workloads to Docker

Education
B.Tech in Computer Science, State University, 2018 - 2022

Technical Skills
Go, Python, Node.js, PostgreSQL, Docker`

func newTestService() *Service {
	return &Service{
		Matcher: skills.NewMatcher(skills.DefaultTaxonomy(), skills.DefaultMatcherConfig()),
		Repo:    NewMemoryRepo(),
	}
}

func TestParseTextDeterministic(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.ParseText(ctx, "guest:u1", sampleResume)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	second, err := svc.ParseText(ctx, "guest:u1", sampleResume)
	if err != nil {
		t.Fatalf("parse again: %v", err)
	}

	if first.ParseID == "" || first.ParseID != second.ParseID {
		t.Fatalf("parse IDs differ: %q vs %q", first.ParseID, second.ParseID)
	}

	a, err := json.Marshal(first.Result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(second.Result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("results differ:\n%s\n%s", a, b)
	}
}

func TestParseTextStructuredData(t *testing.T) {
	svc := newTestService()

	p, err := svc.ParseText(context.Background(), "guest:u1", sampleResume)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res := p.Result

	if res.StructuredData.PersonalInfo.Name != "Jane Smith" {
		t.Fatalf("name = %q", res.StructuredData.PersonalInfo.Name)
	}
	if res.StructuredData.PersonalInfo.Email != "jane.smith@example.com" {
		t.Fatalf("email = %q", res.StructuredData.PersonalInfo.Email)
	}
	if len(res.StructuredData.Experience) != 1 {
		t.Fatalf("experience = %+v", res.StructuredData.Experience)
	}
	exp := res.StructuredData.Experience[0]
	if exp.Title != "Software Engineer" || exp.Company != "Acme Corp" {
		t.Fatalf("experience header: %+v", exp)
	}
	if len(res.StructuredData.Education) != 1 {
		t.Fatalf("education = %+v", res.StructuredData.Education)
	}
	if res.StructuredData.Education[0].Institution != "State University" {
		t.Fatalf("institution = %q", res.StructuredData.Education[0].Institution)
	}

	for _, want := range []string{"Node.js", "PostgreSQL"} {
		if !containsString(res.StructuredData.Skills.Frameworks, want) &&
			!containsString(res.StructuredData.Skills.Databases, want) {
			t.Fatalf("missing skill %s in %+v", want, res.StructuredData.Skills)
		}
	}

	if !containsString(res.Experience, "Software Engineer at Acme Corp (Jan 2022 - Present)") {
		t.Fatalf("legacy experience = %q", res.Experience)
	}
	if len(res.Skills) == 0 || res.Summary == "" || res.Contact == "" {
		t.Fatalf("legacy fields empty: %+v", res)
	}

	if got := res.ParseMetadata.ParseMethod; got != MethodTextInput {
		t.Fatalf("method = %q", got)
	}
	if !containsString(res.ParseMetadata.SectionsDetected, "experience") {
		t.Fatalf("sections detected = %v", res.ParseMetadata.SectionsDetected)
	}
}

func TestParseTextExperienceWithoutHeader(t *testing.T) {
	svc := newTestService()

	text := "Software Engineer at Acme Corp (Jan 2022 - Present)\n• Built APIs using Go"
	p, err := svc.ParseText(context.Background(), "guest:u1", text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	exp := p.Result.StructuredData.Experience
	if len(exp) != 1 {
		t.Fatalf("experience = %+v, want one entry", exp)
	}
	if exp[0].Title != "Software Engineer" || exp[0].Company != "Acme Corp" {
		t.Fatalf("experience header: %+v", exp[0])
	}
	if exp[0].EndDate != "Present" {
		t.Fatalf("end date = %q", exp[0].EndDate)
	}
	if len(exp[0].Bullets) != 1 {
		t.Fatalf("bullets = %v", exp[0].Bullets)
	}
	if p.Result.Confidence.Sections.Experience <= 0 {
		t.Fatalf("experience confidence = %v", p.Result.Confidence.Sections.Experience)
	}
}

func TestParseTextFallbacksWithoutSectionHeaders(t *testing.T) {
	svc := newTestService()

	text := `Jane Smith
Software Engineer at Acme Corp (Jan 2022 - Present)
• Built APIs using Go
Inventory Tracker Project
• Tracks stock with PostgreSQL
Won the regional coding prize
AWS Certified Developer (2022)`

	p, err := svc.ParseText(context.Background(), "guest:u1", text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sd := p.Result.StructuredData

	if len(sd.Projects) != 1 || sd.Projects[0].Name != "Inventory Tracker Project" {
		t.Fatalf("projects = %+v", sd.Projects)
	}
	if len(sd.Achievements) != 1 || sd.Achievements[0].Text != "Won the regional coding prize" {
		t.Fatalf("achievements = %+v", sd.Achievements)
	}
	if sd.Achievements[0].Category != entities.AchievementProfessional {
		t.Fatalf("achievement category = %q", sd.Achievements[0].Category)
	}
	if len(sd.Certifications) != 1 || sd.Certifications[0].Name != "AWS Certified Developer" || sd.Certifications[0].Year != "2022" {
		t.Fatalf("certifications = %+v", sd.Certifications)
	}
}

func TestParsedResumeLegacyListShape(t *testing.T) {
	svc := newTestService()

	p, err := svc.ParseText(context.Background(), "guest:u1", sampleResume)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	raw, err := json.Marshal(p.Result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var payload struct {
		Skills       []string `json:"skills"`
		Experience   []string `json:"experience"`
		Education    []string `json:"education"`
		Projects     []string `json:"projects"`
		Achievements []string `json:"achievements"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("legacy fields must be string lists: %v", err)
	}
	if len(payload.Skills) < 2 {
		t.Fatalf("skills should list one entry per skill: %q", payload.Skills)
	}
	if !containsString(payload.Skills, "Go") || !containsString(payload.Skills, "PostgreSQL") {
		t.Fatalf("skills = %q", payload.Skills)
	}
	if len(payload.Experience) != 1 {
		t.Fatalf("experience = %q", payload.Experience)
	}
	if len(payload.Education) != 1 {
		t.Fatalf("education = %q", payload.Education)
	}
}

func TestParseTextEmptyInput(t *testing.T) {
	svc := newTestService()

	p, err := svc.ParseText(context.Background(), "guest:u1", "   \n\n  ")
	if err != nil {
		t.Fatalf("empty input must not error: %v", err)
	}
	res := p.Result
	if res.Confidence.Overall != 0 {
		t.Fatalf("overall = %v, want 0", res.Confidence.Overall)
	}
	if res.ParseMetadata.ParseID == "" {
		t.Fatal("parse ID must still be assigned")
	}
	if len(res.ParseMetadata.MissingSections) == 0 {
		t.Fatalf("all sections should be missing: %+v", res.ParseMetadata)
	}
	if len(res.ParseMetadata.Warnings) == 0 {
		t.Fatal("expected a warning about empty text")
	}
}

func TestParseTextConfidenceMonotonic(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	base := `Experience
Software Engineer at Acme Corp (Jan 2022 - Present)
• Built APIs`
	richer := base + `

Technical Skills
Go, Python, PostgreSQL, Docker`

	p1, err := svc.ParseText(ctx, "guest:u1", base)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p2, err := svc.ParseText(ctx, "guest:u1", richer)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if p2.Result.Confidence.Overall < p1.Result.Confidence.Overall {
		t.Fatalf("detecting an extra section lowered confidence: %v -> %v",
			p1.Result.Confidence.Overall, p2.Result.Confidence.Overall)
	}
	if p2.Result.Confidence.Sections.Experience < p1.Result.Confidence.Sections.Experience {
		t.Fatalf("experience confidence dropped: %+v vs %+v",
			p1.Result.Confidence.Sections, p2.Result.Confidence.Sections)
	}
}

func TestParseTextPersistsAndFetches(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.ParseText(ctx, "guest:u1", sampleResume)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got, err := svc.GetByParseID(ctx, "guest:u1", p.ParseID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ParseID != p.ParseID || got.Method != MethodTextInput {
		t.Fatalf("fetched wrong parse: %+v", got)
	}

	if _, err := svc.GetByParseID(ctx, "guest:other", p.ParseID); err != ErrNotFound {
		t.Fatalf("cross-user fetch should be not found, got %v", err)
	}
}

func TestMatchSkillsEndToEnd(t *testing.T) {
	svc := newTestService()

	records := svc.MatchSkills(sampleResume, "We need React and PostgreSQL experience.")
	var postgres, react bool
	for _, r := range records {
		switch r.Name {
		case "PostgreSQL":
			postgres = true
			if r.Source != skills.SourceBoth || !r.Selected {
				t.Fatalf("PostgreSQL record wrong: %+v", r)
			}
		case "React":
			react = true
			if r.Source != skills.SourceJD || r.Selected {
				t.Fatalf("React record wrong: %+v", r)
			}
		}
	}
	if !postgres || !react {
		t.Fatalf("missing expected records: %+v", records)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
