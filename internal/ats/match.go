package ats

import (
	"fmt"
	"strings"
)

// transferableSuffix labels a match satisfied by an adjacent skill
// rather than the skill itself. The suffixed name is what downstream
// lookups see, so a transferable match never collects market-demand or
// variety credit.
const transferableSuffix = " (transferable)"

// AnalyzeKeywords matches the resume's skills against the job
// description's required and preferred skills, allowing transferable
// matches, and produces the weighted keyword score with feedback and
// suggestions.
func AnalyzeKeywords(resume *ParsedResume, job *JobDescription) *KeywordAnalysis {
	resumeText := strings.ToLower(resume.Text)
	resumeSkills := extractKeywords(resumeText, vocab.Skills)

	required := lowerAll(job.RequiredSkills)
	preferred := lowerAll(job.PreferredSkills)

	var matchedRequired, missingRequired []string
	for _, skill := range required {
		switch {
		case hasDirectSkill(resumeSkills, skill):
			matchedRequired = append(matchedRequired, skill)
		case transferableMatchScore(resumeSkills, skill) > 0:
			matchedRequired = append(matchedRequired, skill+transferableSuffix)
		default:
			missingRequired = append(missingRequired, skill)
		}
	}

	var matchedPreferred, missingPreferred []string
	for _, skill := range preferred {
		switch {
		case hasDirectSkill(resumeSkills, skill):
			matchedPreferred = append(matchedPreferred, skill)
		case transferableMatchScore(resumeSkills, skill) > 0:
			matchedPreferred = append(matchedPreferred, skill+transferableSuffix)
		default:
			missingPreferred = append(missingPreferred, skill)
		}
	}

	requiredScore := 100.0
	if len(required) > 0 {
		requiredScore = float64(len(matchedRequired)) / float64(len(required)) * 100
	}
	preferredScore := 100.0
	if len(preferred) > 0 {
		preferredScore = float64(len(matchedPreferred)) / float64(len(preferred)) * 100
	}

	missing := append(append([]string{}, missingRequired...), missingPreferred...)
	matched := append(append([]string{}, matchedRequired...), matchedPreferred...)

	softSkills := extractSoftSkills(resume.Text)
	rolePersona := determineRolePersona(resume.Text)

	var feedback []string
	if len(missingRequired) > 0 {
		feedback = append(feedback, fmt.Sprintf("Missing %d required skills: %s", len(missingRequired), strings.Join(missingRequired, ", ")))
	}
	if len(matchedRequired) > 0 {
		feedback = append(feedback, fmt.Sprintf("Matched %d required skills: %s", len(matchedRequired), strings.Join(matchedRequired, ", ")))
	}
	if len(missingPreferred) > 0 {
		feedback = append(feedback, fmt.Sprintf("Missing %d preferred skills: %s", len(missingPreferred), strings.Join(missingPreferred, ", ")))
	}
	if len(matchedPreferred) > 0 {
		feedback = append(feedback, fmt.Sprintf("Matched %d preferred skills: %s", len(matchedPreferred), strings.Join(matchedPreferred, ", ")))
	}
	if n := countTransferable(matched); n > 0 {
		feedback = append(feedback, fmt.Sprintf("Transferable skills detected: %d skills can be adapted", n))
	}
	if len(softSkills) > 0 {
		feedback = append(feedback, fmt.Sprintf("Soft skills identified: %s", strings.Join(softSkills, ", ")))
	}
	feedback = append(feedback, fmt.Sprintf("Role persona: %s", rolePersona))

	return &KeywordAnalysis{
		Matched:          matched,
		Missing:          missing,
		Score:            round(requiredScore*0.7 + preferredScore*0.3),
		Suggestions:      generateSuggestions(resumeSkills, job),
		RequiredMatched:  len(matchedRequired),
		PreferredMatched: len(matchedPreferred),
		TotalRequired:    len(required),
		TotalPreferred:   len(preferred),
		Feedback:         feedback,
		SoftSkills:       softSkills,
		RolePersona:      rolePersona,
		ContextualSkills: extractSkillsWithContext(resume),
	}
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}

func hasDirectSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if strings.ToLower(s) == skill {
			return true
		}
	}
	return false
}

// transferableMatchScore reports how well the candidate covers a
// skill through adjacency: 1.0 for a direct match, 0.85 when any
// candidate skill lists it as transferable, 0 otherwise.
func transferableMatchScore(candidateSkills []string, skill string) float64 {
	target := strings.ToLower(skill)
	if hasDirectSkill(candidateSkills, target) {
		return 1.0
	}
	for _, candidate := range candidateSkills {
		for _, adjacent := range vocab.Transferable[strings.ToLower(candidate)] {
			if adjacent == target {
				return 0.85
			}
		}
	}
	return 0
}

func countTransferable(matched []string) int {
	n := 0
	for _, skill := range matched {
		if strings.Contains(skill, "(transferable)") {
			n++
		}
	}
	return n
}

// generateSuggestions builds the improvement list: critical required
// gaps first, then preferred gaps, level-fit warnings, and the
// standing advice every resume gets.
func generateSuggestions(currentSkills []string, job *JobDescription) []string {
	var suggestions []string

	missingRequired := subtract(job.RequiredSkills, currentSkills)
	if len(missingRequired) > 0 {
		suggestions = append(suggestions, "CRITICAL: Add these required skills: "+strings.Join(firstN(missingRequired, 3), ", "))
	}

	missingPreferred := subtract(job.PreferredSkills, currentSkills)
	if len(missingPreferred) > 0 {
		suggestions = append(suggestions, "Add these preferred skills: "+strings.Join(firstN(missingPreferred, 3), ", "))
	}

	if job.ExperienceLevel == LevelSenior && len(currentSkills) < 15 {
		suggestions = append(suggestions, "Resume lacks senior-level skills and experience depth")
	}
	if job.ExperienceLevel == LevelEntry && len(currentSkills) > 20 {
		suggestions = append(suggestions, "Resume may be overqualified for entry-level position")
	}
	if len(currentSkills) < 8 {
		suggestions = append(suggestions, "Add more technical skills to your resume")
	}

	suggestions = append(suggestions,
		"Include quantifiable achievements and metrics",
		"Highlight relevant project experience")

	return suggestions
}

func subtract(from, exclude []string) []string {
	var result []string
	for _, v := range from {
		found := false
		for _, e := range exclude {
			if v == e {
				found = true
				break
			}
		}
		if !found {
			result = append(result, v)
		}
	}
	return result
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

// extractSoftSkills returns every soft skill mentioned anywhere in
// the text.
func extractSoftSkills(text string) []string {
	textLower := strings.ToLower(text)
	var found []string
	for _, skill := range vocab.SoftSkills {
		if strings.Contains(textLower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// determineRolePersona scores each persona by keyword hits and picks
// the first highest scorer in table order. A text with no hits still
// resolves to the first persona; "general" only appears when the
// persona table itself is empty.
func determineRolePersona(text string) string {
	textLower := strings.ToLower(text)

	best := ""
	bestScore := -1
	for _, p := range vocab.Personas {
		score := 0
		for _, keyword := range p.Keywords {
			if strings.Contains(textLower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = p.Name
		}
	}
	if best == "" {
		return "general"
	}
	return best
}

// extractSkillsWithContext finds each skill's best placement in the
// resume, scanning sections from strongest to weakest signal. A skill
// is only credited to the first section it appears in.
func extractSkillsWithContext(resume *ParsedResume) []ContextualSkill {
	var skills []ContextualSkill
	seen := make(map[string]bool)

	scan := func(sectionText, context string, discount float64) {
		if sectionText == "" {
			return
		}
		textLower := strings.ToLower(sectionText)
		for _, skill := range vocab.Skills {
			if seen[skill] || !strings.Contains(textLower, strings.ToLower(skill)) {
				continue
			}
			seen[skill] = true
			skills = append(skills, ContextualSkill{
				Skill:   skill,
				Weight:  float64(skillWeight(skill)) * discount,
				Context: context,
			})
		}
	}

	scan(resume.Sections.Skills, ContextSkillsSection, 1.0)
	scan(resume.Sections.Experience, ContextExperienceSection, 0.8)
	scan(resume.Sections.Projects, ContextProjectsSection, 0.7)
	scan(resume.Sections.Summary, ContextSummarySection, 0.5)

	return skills
}
