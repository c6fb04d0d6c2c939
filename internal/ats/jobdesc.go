package ats

import "strings"

// Phrases that mark a skill as required or preferred when they appear
// within 100 characters of the skill mention.
var (
	requiredPhrases = []string{
		"required", "must have", "must possess", "essential", "mandatory", "prerequisite",
		"minimum requirements", "required skills", "must know", "required experience",
	}
	preferredPhrases = []string{
		"preferred", "nice to have", "bonus", "plus", "advantageous", "desired",
		"would be great", "helpful", "beneficial", "ideal",
	}
)

// ParseJobDescription analyzes a job posting: extracts its skill
// keywords, classifies them as required or preferred, and determines
// the experience and education levels it asks for.
func ParseJobDescription(text string) *JobDescription {
	keywords := extractKeywords(text, vocab.Skills)
	required, preferred := categorizeSkills(text, keywords)

	return &JobDescription{
		Text:             text,
		Keywords:         keywords,
		Requirements:     extractRequirements(text),
		Responsibilities: extractResponsibilities(text),
		RequiredSkills:   required,
		PreferredSkills:  preferred,
		ExperienceLevel:  determineExperienceLevel(text),
		EducationLevel:   determineEducationLevel(text),
	}
}

// categorizeSkills classifies each keyword by the phrases in a
// 100-character window around its first occurrence. A keyword with no
// occurrence in the raw text is skipped entirely. No signal at all
// means required.
func categorizeSkills(text string, keywords []string) (required, preferred []string) {
	textLower := strings.ToLower(text)

	for _, keyword := range keywords {
		idx := strings.Index(textLower, keyword)
		if idx < 0 {
			continue
		}
		start := max(0, idx-100)
		end := min(len(textLower), idx+100)
		window := textLower[start:end]

		switch {
		case containsAny(window, requiredPhrases):
			required = append(required, keyword)
		case containsAny(window, preferredPhrases):
			preferred = append(preferred, keyword)
		default:
			required = append(required, keyword)
		}
	}
	return required, preferred
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}

func determineExperienceLevel(text string) string {
	textLower := strings.ToLower(text)
	switch {
	case containsAny(textLower, []string{"senior", "lead", "principal"}):
		return LevelSenior
	case containsAny(textLower, []string{"mid", "intermediate", "3+ years"}):
		return LevelMid
	case containsAny(textLower, []string{"entry", "junior", "0-2 years"}):
		return LevelEntry
	default:
		return LevelMid
	}
}

func determineEducationLevel(text string) string {
	textLower := strings.ToLower(text)
	switch {
	case containsAny(textLower, []string{"phd", "doctorate"}):
		return EducationPhD
	case containsAny(textLower, []string{"master", "ms", "mba"}):
		return EducationMaster
	case containsAny(textLower, []string{"bachelor", "bs", "ba"}):
		return EducationBachelor
	default:
		return EducationBachelor
	}
}

func extractRequirements(text string) []string {
	return linesContaining(text, []string{"requirements", "qualifications", "must have", "should have"})
}

func extractResponsibilities(text string) []string {
	return linesContaining(text, []string{"responsibilities", "duties", "will", "develop", "design"})
}

func linesContaining(text string, markers []string) []string {
	var matched []string
	for _, line := range strings.Split(text, "\n") {
		if containsAny(strings.ToLower(line), markers) {
			matched = append(matched, strings.TrimSpace(line))
		}
	}
	return matched
}
