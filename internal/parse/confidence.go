package parse

import (
	"careerprep-backend/internal/extract"
	"careerprep-backend/internal/sections"
)

// Section weights for the overall score. Experience dominates because it is
// the hardest section to recover and the most valuable when present.
var sectionWeights = map[sections.Type]float64{
	sections.Contact:      0.15,
	sections.Experience:   0.30,
	sections.Education:    0.15,
	sections.Skills:       0.20,
	sections.Projects:     0.10,
	sections.Achievements: 0.10,
}

const (
	weightSections    = 0.85
	weightTextQuality = 0.15
	// fullTextChars is the text length at which length stops boosting quality.
	fullTextChars = 1500
)

// sectionScore combines the extractor's own confidence with the segmenter's
// span confidence. Taking the max means a strong span can never drag a score
// down, so detecting a section never lowers the overall result.
func sectionScore(extractorConf float64, spans []sections.Span, t sections.Type) float64 {
	spanConf := sections.ConfidenceFor(spans, t)
	if spanConf > extractorConf {
		return spanConf
	}
	return extractorConf
}

// overallScore folds the per-section scores and raw text quality into one
// number in [0, 1]. Empty text scores zero outright.
func overallScore(text string, scores SectionConfidences) float64 {
	if text == "" {
		return 0
	}

	weighted := scores.Contact*sectionWeights[sections.Contact] +
		scores.Experience*sectionWeights[sections.Experience] +
		scores.Education*sectionWeights[sections.Education] +
		scores.Skills*sectionWeights[sections.Skills] +
		scores.Projects*sectionWeights[sections.Projects] +
		scores.Achievements*sectionWeights[sections.Achievements]

	quality := textQuality(text)
	score := weighted*weightSections + quality*weightTextQuality
	if score > 1 {
		score = 1
	}
	return score
}

// textQuality rewards longer, cleanly decoded text.
func textQuality(text string) float64 {
	length := float64(len(text)) / fullTextChars
	if length > 1 {
		length = 1
	}
	return length * extract.PrintableRatio(text)
}
