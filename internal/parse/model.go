package parse

import (
	"time"

	"careerprep-backend/internal/entities"
)

// parserVersion participates in the parse fingerprint: bumping it invalidates
// cached results after behavior changes.
const parserVersion = "resume-parser/1"

// Parse is the stored record of one parsing run.
type Parse struct {
	ID         string
	UserID     string
	DocumentID string
	ParseID    string
	Method     string
	Overall    float64
	Result     ParsedResume
	CreatedAt  time.Time
}

// ParsedResume is the full parse result. The legacy top-level fields mirror
// structuredData for consumers that predate it: one rendered line per entry,
// skills as one deduplicated list.
type ParsedResume struct {
	Text           string           `json:"text"`
	Confidence     ConfidenceReport `json:"confidence"`
	StructuredData StructuredData   `json:"structuredData"`
	Contact        string           `json:"contact"`
	Summary        string           `json:"summary"`
	Skills         []string         `json:"skills"`
	Experience     []string         `json:"experience"`
	Education      []string         `json:"education"`
	Projects       []string         `json:"projects"`
	Achievements   []string         `json:"achievements"`
	ParseMetadata  Metadata         `json:"parseMetadata"`
}

// ConfidenceReport carries the overall score and the per-section breakdown.
type ConfidenceReport struct {
	Overall  float64            `json:"overall"`
	Sections SectionConfidences `json:"sections"`
}

// SectionConfidences is a fixed-shape breakdown so the JSON field order never
// depends on detection order.
type SectionConfidences struct {
	Contact      float64 `json:"contact"`
	Experience   float64 `json:"experience"`
	Education    float64 `json:"education"`
	Skills       float64 `json:"skills"`
	Projects     float64 `json:"projects"`
	Achievements float64 `json:"achievements"`
}

// StructuredData is the typed extraction output.
type StructuredData struct {
	PersonalInfo   entities.PersonalInfo    `json:"personalInfo"`
	Experience     []entities.ExperienceItem `json:"experience"`
	Education      []entities.EducationItem  `json:"education"`
	Projects       []entities.ProjectItem    `json:"projects"`
	Skills         SkillBuckets              `json:"skills"`
	Achievements   []entities.Achievement    `json:"achievements"`
	Certifications []entities.Certification  `json:"certifications"`
}

// SkillBuckets groups matched skills for the structured payload. Concepts and
// soft skills fold into Technical.
type SkillBuckets struct {
	Technical  []string `json:"technical"`
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Databases  []string `json:"databases"`
	Tools      []string `json:"tools"`
}

// Metadata describes how the parse went.
type Metadata struct {
	ParseID          string   `json:"parseId"`
	ParseMethod      string   `json:"parseMethod"`
	SectionsDetected []string `json:"sectionsDetected"`
	MissingSections  []string `json:"missingSections"`
	Warnings         []string `json:"warnings"`
}
