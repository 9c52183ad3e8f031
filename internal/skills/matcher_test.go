package skills

import (
	"reflect"
	"testing"
)

func newTestMatcher() *Matcher {
	return NewMatcher(DefaultTaxonomy(), DefaultMatcherConfig())
}

func findRecord(records []Record, name string) (Record, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

func TestMatchWholeWordBoundaries(t *testing.T) {
	m := newTestMatcher()

	mentions := m.Match("Implemented services in C++ and Go.")
	if _, ok := mentions["C++"]; !ok {
		t.Fatalf("expected C++ match, got %v", mentions)
	}
	if _, ok := mentions["C"]; ok {
		t.Fatalf("bare C must not match inside C++: %v", mentions)
	}
	if _, ok := mentions["Go"]; !ok {
		t.Fatalf("expected Go match, got %v", mentions)
	}
}

func TestMatchSynonymsResolveToCanonicalName(t *testing.T) {
	m := newTestMatcher()

	mentions := m.Match("Backend in nodejs talking to postgres.")
	if got, ok := mentions["Node.js"]; !ok || got.Frequency != 1 {
		t.Fatalf("nodejs should resolve to Node.js, got %v", mentions)
	}
	if _, ok := mentions["PostgreSQL"]; !ok {
		t.Fatalf("postgres should resolve to PostgreSQL, got %v", mentions)
	}
}

func TestMatchContextFromActionKeyword(t *testing.T) {
	m := newTestMatcher()

	with := m.Match("Built the payment service using Python.")
	if got := with["Python"]; !got.HasContext {
		t.Fatalf("expected context from action keyword, got %+v", got)
	}
	without := m.Match("Python")
	if got := without["Python"]; got.HasContext {
		t.Fatalf("bare mention must not have context, got %+v", got)
	}
}

func TestMatchContextFromSkillsSection(t *testing.T) {
	m := newTestMatcher()

	text := "Skills\nPython, Redis, Terraform"
	mentions := m.Match(text)
	if got := mentions["Redis"]; !got.HasContext {
		t.Fatalf("mention inside skills section should have context, got %+v", got)
	}
}

func TestProcessExtractionResumeAndJD(t *testing.T) {
	m := newTestMatcher()

	resume := "Skills\nReact, React, React"
	jd := "Looking for someone who knows React."
	records := m.ProcessExtraction(resume, jd)

	rec, ok := findRecord(records, "React")
	if !ok {
		t.Fatalf("expected React record, got %+v", records)
	}
	if rec.Source != SourceBoth {
		t.Fatalf("source = %s, want Both", rec.Source)
	}
	if rec.Confidence != ConfidenceHigh {
		t.Fatalf("confidence = %s, want High (freq %d)", rec.Confidence, rec.Frequency)
	}
	if !rec.Selected {
		t.Fatal("resume-backed skill must be pre-selected")
	}
}

func TestProcessExtractionJDOnlyNotSelected(t *testing.T) {
	m := newTestMatcher()

	records := m.ProcessExtraction("Worked with Python daily.", "Kubernetes experience required.")
	rec, ok := findRecord(records, "Kubernetes")
	if !ok {
		t.Fatalf("expected Kubernetes record, got %+v", records)
	}
	if rec.Source != SourceJD || rec.Selected || rec.InResume {
		t.Fatalf("JD-only record wrong: %+v", rec)
	}
}

func TestProcessExtractionConfidenceTiers(t *testing.T) {
	m := newTestMatcher()

	cases := []struct {
		name   string
		resume string
		skill  string
		want   Confidence
	}{
		{"single bare mention", "Rust", "Rust", ConfidenceLow},
		{"single mention with context", "Developed tooling using Rust.", "Rust", ConfidenceMedium},
		{"two bare mentions", "Rust. Rust.", "Rust", ConfidenceMedium},
		{"two mentions with context", "Built a daemon using Rust. Rust everywhere.", "Rust", ConfidenceHigh},
		{"three mentions", "Rust. Rust. Rust.", "Rust", ConfidenceHigh},
	}
	for _, tc := range cases {
		records := m.ProcessExtraction(tc.resume, "")
		rec, ok := findRecord(records, tc.skill)
		if !ok {
			t.Fatalf("%s: no record for %s", tc.name, tc.skill)
		}
		if rec.Confidence != tc.want {
			t.Fatalf("%s: confidence = %s, want %s (%+v)", tc.name, rec.Confidence, tc.want, rec)
		}
	}
}

func TestProcessExtractionDeterministicOrdering(t *testing.T) {
	m := newTestMatcher()

	resume := "Skills\nGo, Python, React, Docker, PostgreSQL, Leadership"
	first := m.ProcessExtraction(resume, "")
	for i := 0; i < 5; i++ {
		again := m.ProcessExtraction(resume, "")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ordering not stable:\nfirst %+v\nagain %+v", first, again)
		}
	}

	// Category groups follow the fixed order.
	lastRank := -1
	for _, r := range first {
		rank := categoryRank(r.Category)
		if rank < lastRank {
			t.Fatalf("categories out of order: %+v", first)
		}
		lastRank = rank
	}
}

func TestTechnologiesExcludesSoftSkills(t *testing.T) {
	m := newTestMatcher()

	got := m.Technologies("Leadership and teamwork while shipping Go services on PostgreSQL.")
	want := []string{"Go", "PostgreSQL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Technologies = %v, want %v", got, want)
	}
}

func TestMatchEmptyText(t *testing.T) {
	m := newTestMatcher()
	if got := m.Match("   \n"); len(got) != 0 {
		t.Fatalf("expected no mentions, got %v", got)
	}
	if got := m.ProcessExtraction("", ""); len(got) != 0 {
		t.Fatalf("expected no records, got %v", got)
	}
}
