package sections

import (
	"strings"
	"testing"
)

const sampleResume = `John Doe
john.doe@example.com

Professional Summary
Engineer focused on backend systems.

Experience
Software Engineer at Acme Corp (Jan 2022 - Present)
• Built scalable APIs

Education
B.Tech in Computer Science, State University, 2018 - 2022

Technical Skills
Go, Python, PostgreSQL`

func TestSegmentFindsHeadersAndSynonyms(t *testing.T) {
	spans := Segment(sampleResume)

	want := map[Type]bool{Summary: true, Experience: true, Education: true, Skills: true}
	got := make(map[Type]bool)
	for _, s := range spans {
		got[s.Type] = true
	}
	for typ := range want {
		if !got[typ] {
			t.Fatalf("expected %s span, got %+v", typ, spans)
		}
	}

	// Canonical headers score above synonyms.
	if ConfidenceFor(spans, Experience) <= ConfidenceFor(spans, Skills) {
		t.Fatalf("canonical 'Experience' should outrank synonym 'Technical Skills': %+v", spans)
	}

	expText, ok := TextFor(sampleResume, spans, Experience)
	if !ok {
		t.Fatal("expected experience text")
	}
	if !strings.Contains(expText, "Acme Corp") || strings.Contains(expText, "B.Tech") {
		t.Fatalf("experience span has wrong bounds: %q", expText)
	}
}

func TestSegmentSpansOrderedAndNonOverlapping(t *testing.T) {
	spans := Segment(sampleResume)
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].End {
			t.Fatalf("spans overlap: %+v", spans)
		}
	}
}

func TestSegmentRejectsSentenceLikeHeaders(t *testing.T) {
	text := "I have ten years of experience working on large distributed systems.\nMore detail on another line here."
	spans := Segment(text)
	for _, s := range spans {
		if s.Confidence > confInferred {
			t.Fatalf("sentence should not match a header: %+v", s)
		}
	}
}

func TestSegmentHeaderNeedsContent(t *testing.T) {
	text := "Experience\nEducation\nB.Tech, State University, 2020"
	spans := Segment(text)
	if hasType(spans, Experience) {
		t.Fatalf("header with no body must be dropped: %+v", spans)
	}
	if !hasType(spans, Education) {
		t.Fatalf("education with body must be kept: %+v", spans)
	}
}

func TestSegmentInfersExperienceFromDateLines(t *testing.T) {
	text := `Backend Developer, Initech (2019 - 2021)
• Shipped the billing service
Platform Engineer, Hooli (Mar 2021 - Present)
• Ran the infrastructure team`
	spans := Segment(text)
	if !hasType(spans, Experience) {
		t.Fatalf("expected inferred experience span, got %+v", spans)
	}
	if got := ConfidenceFor(spans, Experience); got != confInferred {
		t.Fatalf("inferred span confidence = %v, want %v", got, confInferred)
	}
}

func TestSegmentEmptyText(t *testing.T) {
	if spans := Segment("   \n \n"); spans != nil {
		t.Fatalf("expected no spans for blank text, got %+v", spans)
	}
	missing := Missing(nil)
	if len(missing) != len(AllTypes) {
		t.Fatalf("expected all types missing, got %v", missing)
	}
}

func TestDetectedAndMissingPartition(t *testing.T) {
	spans := Segment(sampleResume)
	detected := Detected(spans)
	missing := Missing(spans)
	if len(detected)+len(missing) != len(AllTypes) {
		t.Fatalf("detected %v + missing %v should cover all types", detected, missing)
	}
}
