package parse

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"careerprep-backend/internal/documents"
	"careerprep-backend/internal/entities"
	"careerprep-backend/internal/extract"
	"careerprep-backend/internal/sections"
	"careerprep-backend/internal/shared/metrics"
	"careerprep-backend/internal/shared/telemetry"
	"careerprep-backend/internal/shared/util"
	"careerprep-backend/internal/skills"
)

// MethodTextInput is the parse method recorded for direct text submissions.
const MethodTextInput = "text-input"

var allowedMimeTypes = map[string]bool{
	extract.MimePDF:  true,
	extract.MimeDOCX: true,
	extract.MimeText: true,
}

// Service runs the parsing pipeline: extract text, segment it, pull entities
// and skills, score confidence, and persist the result.
type Service struct {
	Cascade *extract.Cascade
	Matcher *skills.Matcher
	Repo    ParsesRepo
	// Docs archives the uploaded file and its extracted text. Optional: the
	// pipeline still works without persistence of the original.
	Docs *documents.Service
}

// ParseUpload extracts text from an uploaded document and runs the pipeline
// on it. The same bytes always produce the same result and parse ID.
func (s *Service) ParseUpload(ctx context.Context, userID, fileName, mimeType string, data []byte) (Parse, error) {
	if len(data) == 0 {
		return Parse{}, ErrInvalidInput
	}

	mime := extract.NormalizeMimeType(mimeType, fileName, data)
	if !allowedMimeTypes[mime] {
		return Parse{}, ErrInvalidFileType
	}

	metrics.IncParseStarted()
	start := time.Now()

	res, err := s.Cascade.Extract(ctx, data, mime, fileName)
	if err != nil {
		metrics.IncParseFailed()
		var unreadable *extract.UnreadableError
		if errors.As(err, &unreadable) {
			metrics.IncParseUnreadable()
			telemetry.Warn("parse.unreadable", map[string]any{
				"user_id":  userID,
				"mime":     mime,
				"attempts": len(unreadable.Attempts),
			})
			return Parse{}, errors.Join(ErrUnreadable, unreadable)
		}
		return Parse{}, err
	}

	documentID := s.archive(ctx, userID, fileName, data, res.Text)
	result := s.buildResult(res.Text, res.Method)
	p, err := s.persist(ctx, userID, documentID, res.Method, result)
	if err != nil {
		metrics.IncParseFailed()
		return Parse{}, err
	}
	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(time.Since(start).Milliseconds()))
	return p, nil
}

// ParseText runs the pipeline directly on pasted text.
func (s *Service) ParseText(ctx context.Context, userID, text string) (Parse, error) {
	if err := ctx.Err(); err != nil {
		return Parse{}, err
	}
	metrics.IncParseStarted()
	start := time.Now()

	normalized := extract.Normalize(text)
	result := s.buildResult(normalized, MethodTextInput)
	p, err := s.persist(ctx, userID, "", MethodTextInput, result)
	if err != nil {
		metrics.IncParseFailed()
		return Parse{}, err
	}
	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(time.Since(start).Milliseconds()))
	return p, nil
}

// GetByParseID returns a stored parse for the user.
func (s *Service) GetByParseID(ctx context.Context, userID, parseID string) (Parse, error) {
	if userID == "" || parseID == "" {
		return Parse{}, ErrInvalidInput
	}
	return s.Repo.GetByParseID(ctx, userID, parseID)
}

// List returns the user's parse history, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Parse, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// MatchSkills scores resume skills against an optional job description.
func (s *Service) MatchSkills(resumeText, jdText string) []skills.Record {
	return s.Matcher.ProcessExtraction(extract.Normalize(resumeText), extract.Normalize(jdText))
}

// archive stores the original file and extracted text. Failures are logged,
// not returned: losing the archive copy must not fail the parse.
func (s *Service) archive(ctx context.Context, userID, fileName string, data []byte, text string) string {
	if s.Docs == nil {
		return ""
	}
	doc, err := s.Docs.Upload(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		telemetry.Warn("parse.archive_failed", map[string]any{"user_id": userID, "error": err.Error()})
		return ""
	}
	if err := s.Docs.RecordExtraction(ctx, userID, doc.ID, text); err != nil {
		telemetry.Warn("parse.extraction_record_failed", map[string]any{"user_id": userID, "document_id": doc.ID, "error": err.Error()})
	}
	return doc.ID
}

// buildResult is the deterministic core of the pipeline. It must not consult
// the clock, randomness, or any per-request state.
func (s *Service) buildResult(text, method string) ParsedResume {
	parseID := util.ContentHash(parserVersion, text)

	if strings.TrimSpace(text) == "" {
		return ParsedResume{
			Skills:       []string{},
			Experience:   []string{},
			Education:    []string{},
			Projects:     []string{},
			Achievements: []string{},
			ParseMetadata: Metadata{
				ParseID:          parseID,
				ParseMethod:      method,
				MissingSections:  typeNames(sections.AllTypes),
				SectionsDetected: []string{},
				Warnings:         []string{"no text to parse"},
			},
		}
	}

	spans := sections.Segment(text)
	var warnings []string

	contactText, _ := sections.TextFor(text, spans, sections.Contact)
	info, contactConf, w := entities.ExtractContact(text, contactText)
	warnings = append(warnings, w...)

	// Extractors whose section header is missing fall back to a best-effort
	// scan of the whole document (cue-filtered where the extractor would
	// otherwise drown in unrelated lines); finding nothing then scores 0
	// without warnings, so a resume legitimately lacking the section is not
	// penalized with noise.
	experienceText, hasExperience := sections.TextFor(text, spans, sections.Experience)
	if !hasExperience {
		experienceText = text
	}
	expItems, expConf, w := entities.ExtractExperience(experienceText, s.Matcher)
	if !hasExperience && len(expItems) == 0 {
		expConf = 0
		w = nil
	}
	warnings = append(warnings, w...)

	educationText, hasEducation := sections.TextFor(text, spans, sections.Education)
	if !hasEducation {
		educationText = text
	}
	eduItems, eduConf, w := entities.ExtractEducation(educationText)
	if !hasEducation && len(eduItems) == 0 {
		eduConf = 0
		w = nil
	}
	warnings = append(warnings, w...)

	projectsText, hasProjects := sections.TextFor(text, spans, sections.Projects)
	if !hasProjects {
		projectsText = entities.ProjectCandidateLines(text)
	}
	projItems, projConf, w := entities.ExtractProjects(projectsText, s.Matcher)
	if !hasProjects && len(projItems) == 0 {
		projConf = 0
		w = nil
	}
	warnings = append(warnings, w...)

	achievementsText, hasAchievements := sections.TextFor(text, spans, sections.Achievements)
	if !hasAchievements {
		achievementsText = entities.AchievementCandidateLines(text)
	}
	achItems, achConf, _ := entities.ExtractAchievements(achievementsText)

	certificationsText, hasCertifications := sections.TextFor(text, spans, sections.Certifications)
	if !hasCertifications {
		certificationsText = entities.CertificationCandidateLines(text)
	}
	certItems, _, _ := entities.ExtractCertifications(certificationsText)

	records := s.Matcher.ProcessExtraction(text, "")
	buckets, skillNames := bucketSkills(records)
	skillsConf := skillsScore(len(records))

	scores := SectionConfidences{
		Contact:      sectionScore(contactConf, spans, sections.Contact),
		Experience:   sectionScore(expConf, spans, sections.Experience),
		Education:    sectionScore(eduConf, spans, sections.Education),
		Skills:       sectionScore(skillsConf, spans, sections.Skills),
		Projects:     sectionScore(projConf, spans, sections.Projects),
		Achievements: sectionScore(achConf, spans, sections.Achievements),
	}

	summary, _ := sections.TextFor(text, spans, sections.Summary)

	return ParsedResume{
		Text: text,
		Confidence: ConfidenceReport{
			Overall:  overallScore(text, scores),
			Sections: scores,
		},
		StructuredData: StructuredData{
			PersonalInfo:   info,
			Experience:     expItems,
			Education:      eduItems,
			Projects:       projItems,
			Skills:         buckets,
			Achievements:   achItems,
			Certifications: certItems,
		},
		Contact:      FormatContact(info),
		Summary:      strings.TrimSpace(summary),
		Skills:       FormatSkills(skillNames),
		Experience:   FormatExperience(expItems),
		Education:    FormatEducation(eduItems),
		Projects:     FormatProjects(projItems),
		Achievements: FormatAchievements(achItems),
		ParseMetadata: Metadata{
			ParseID:          parseID,
			ParseMethod:      method,
			SectionsDetected: typeNames(sections.Detected(spans)),
			MissingSections:  typeNames(sections.Missing(spans)),
			Warnings:         warnings,
		},
	}
}

func (s *Service) persist(ctx context.Context, userID, documentID, method string, result ParsedResume) (Parse, error) {
	p := Parse{
		ID:         uuid.NewString(),
		UserID:     userID,
		DocumentID: documentID,
		ParseID:    result.ParseMetadata.ParseID,
		Method:     method,
		Overall:    result.Confidence.Overall,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	if s.Repo != nil {
		if err := s.Repo.Create(ctx, p); err != nil {
			return Parse{}, err
		}
	}
	return p, nil
}

// bucketSkills folds matcher records into the structured buckets, keeping the
// matcher's ordering. Concepts and soft skills land in Technical.
func bucketSkills(records []skills.Record) (SkillBuckets, []string) {
	var buckets SkillBuckets
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
		switch r.Category {
		case skills.CategoryLanguages:
			buckets.Languages = append(buckets.Languages, r.Name)
		case skills.CategoryFrameworks:
			buckets.Frameworks = append(buckets.Frameworks, r.Name)
		case skills.CategoryDatabases:
			buckets.Databases = append(buckets.Databases, r.Name)
		case skills.CategoryTools:
			buckets.Tools = append(buckets.Tools, r.Name)
		default:
			buckets.Technical = append(buckets.Technical, r.Name)
		}
	}
	return buckets, names
}

// skillsScore scales with how many distinct skills matched.
func skillsScore(matched int) float64 {
	score := float64(matched) * 0.15
	if score > 1 {
		score = 1
	}
	return score
}

func typeNames(types []sections.Type) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}
