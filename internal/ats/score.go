package ats

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Weights of the score dimensions. They sum to 1 before the bonus and
// penalty modifiers are applied.
const (
	weightRequiredSkills = 0.35
	weightExperience     = 0.30
	weightSkillsContext  = 0.15
	weightEducation      = 0.08
	weightFormat         = 0.07
	weightSoftSkills     = 0.05
)

type redFlag struct {
	pattern *regexp.Regexp
	penalty float64
	reason  string
}

var redFlags = []redFlag{
	{regexp.MustCompile(`(?i)\bgap.{0,20}(year|month|employment)\b`), -5, "Employment gap mentioned"},
	{regexp.MustCompile(`(?i)\b(fired|terminated|laid.off|dismissed)\b`), -10, "Negative employment language"},
	{regexp.MustCompile(`(?i)\b(too many jobs|job hopping|frequent changes)\b`), -8, "Job hopping pattern"},
	{regexp.MustCompile(`(?i)\bovertime.{0,10}expected\b`), -3, "Work-life balance concerns"},
	{regexp.MustCompile(`(?i)\b(conflict|dispute|disagreement).{0,20}(employer|manager|team)\b`), -7, "Workplace conflict mentioned"},
	{regexp.MustCompile(`(?i)\b(forced|involuntary|unwilling).{0,20}(resign|leave|quit)\b`), -9, "Involuntary departure"},
	{regexp.MustCompile(`(?i)\b(performance issues|underperformed|struggled)\b`), -6, "Performance concerns"},
	{regexp.MustCompile(`(?i)\b(overqualified|too experienced|bored)\b`), -4, "Overqualification concerns"},
}

var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)%`),
	regexp.MustCompile(`\$[\d,]+`),
	regexp.MustCompile(`\d+\s+(?:people|staff|members)`),
	regexp.MustCompile(`(?i)saved \d+`),
	regexp.MustCompile(`(?i)reduced \d+`),
	regexp.MustCompile(`(?i)improved \d+`),
	regexp.MustCompile(`(?i)increased \d+`),
}

var (
	explicitYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?experience`),
		regexp.MustCompile(`experience[:\s]*(\d+)\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:in\s*)?(?:software|development|programming|engineering)`),
	}
	calendarYearRe = regexp.MustCompile(`\b(20[12]\d)\b`)
	sectionYearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
)

var experienceLevelYears = map[string]int{
	"entry":     0,
	"junior":    1,
	"mid":       3,
	"senior":    5,
	"lead":      7,
	"principal": 10,
	"staff":     10,
	"architect": 12,
	"director":  15,
}

var compatiblePersonas = [][2]string{
	{"developer", "devops"},
	{"developer", "qa"},
	{"analyst", "data"},
	{"manager", "analyst"},
	{"designer", "developer"},
	{"data", "analyst"},
}

// CalculateATSScore computes the overall ATS score for a resume
// against a job description. It never fails; degenerate inputs
// degrade toward the floor of the range. The result is clamped to
// [0, 100].
func CalculateATSScore(resume *ParsedResume, job *JobDescription) int {
	score, _ := scoreResume(resume, job, AnalyzeKeywords(resume, job))
	return score
}

// scoreResume composes the weighted dimensions, then layers market
// demand bonuses, red flag penalties, title alignment, achievement
// bonuses, and the strict multiplicative penalties on top. The
// feedback list explains each contribution.
func scoreResume(resume *ParsedResume, job *JobDescription, analysis *KeywordAnalysis) (int, []string) {
	total := 0.0

	requiredScore := requiredSkillsCurve(analysis)
	total += requiredScore * weightRequiredSkills

	experienceScore := experienceMatchScore(resume, job)
	total += experienceScore * weightExperience

	contextScore := skillsContextScore(analysis, resume)
	total += contextScore * weightSkillsContext

	educationScore := educationMatchScore(resume, job)
	total += educationScore * weightEducation

	formatScore := formatScore(resume)
	total += formatScore * weightFormat

	softBonus := softSkillsBonus(analysis, resume, job)
	total += softBonus * weightSoftSkills

	total += marketDemandBonus(analysis)

	flagPenalty, flags := checkRedFlags(resume.Text)
	total += flagPenalty

	titleScore := titleAlignment(resume.Text, job.Text)
	total += (titleScore - 50) * 0.1

	achievement := achievementBonus(resume.Text)
	total += achievement

	total = applyStrictPenalties(total, analysis, resume, job)

	feedback := append([]string{}, analysis.Feedback...)
	if experienceScore < 60 {
		feedback = append(feedback, fmt.Sprintf("Experience level mismatch: %s role requires more experience", job.ExperienceLevel))
	}
	if educationScore < 60 {
		feedback = append(feedback, fmt.Sprintf("Education level mismatch: %s degree required", job.EducationLevel))
	}
	if formatScore < 80 {
		feedback = append(feedback, "Resume format issues: Missing key sections or contact information")
	}
	if softBonus > 0 {
		feedback = append(feedback, fmt.Sprintf("Soft skills bonus: +%d%% for role fit", round(softBonus)))
	}
	if len(flags) > 0 {
		feedback = append(feedback, fmt.Sprintf("Red flags detected: %s (%d%% penalty)", strings.Join(flags, ", "), int(flagPenalty)))
	}
	if titleScore < 70 {
		feedback = append(feedback, "Job title alignment: Consider roles more aligned with your experience level")
	}
	if achievement > 0 {
		feedback = append(feedback, fmt.Sprintf("Achievement bonus: +%d%% for quantified accomplishments", int(achievement)))
	}

	return round(math.Max(0, math.Min(total, 100))), feedback
}

// requiredSkillsCurve maps the required-skill match rate onto a
// strict curve: below half coverage the score stays under 20, full
// coverage tops out at 68, and no identified required skills yields a
// 60-point base.
func requiredSkillsCurve(analysis *KeywordAnalysis) float64 {
	if analysis.TotalRequired == 0 {
		return 60
	}
	rate := float64(analysis.RequiredMatched) / float64(analysis.TotalRequired)
	switch {
	case rate < 0.5:
		return rate * 40
	case rate < 0.8:
		return 40 + (rate-0.5)*40
	default:
		return 60 + (rate-0.8)*40
	}
}

func experienceMatchScore(resume *ParsedResume, job *JobDescription) float64 {
	candidateYears := extractYearsOfExperience(strings.ToLower(resume.Text))
	requiredYears := experienceLevelToYears(job.ExperienceLevel)
	return experienceCurve(candidateYears, requiredYears)
}

// experienceCurve scores the difference between candidate and
// required years. Moderate overqualification costs less than
// underqualification of the same size.
func experienceCurve(candidateYears, requiredYears int) float64 {
	diff := candidateYears - requiredYears
	switch {
	case diff >= -1 && diff <= 2:
		return 100
	case diff >= -2 && diff <= 4:
		return 85
	case diff >= -3 && diff <= 6:
		return 70
	case diff > 6 && diff <= 10:
		return 50
	case diff > 10:
		return 30
	case diff >= -10:
		return math.Max(20, 60+float64(diff)*5)
	default:
		return math.Max(10, 20+float64(diff)*2)
	}
}

// extractYearsOfExperience reads an explicit years-of-experience
// statement; failing that, it estimates from the calendar-year span
// of the job history.
func extractYearsOfExperience(resumeText string) int {
	for _, pattern := range explicitYearsPatterns {
		if m := pattern.FindStringSubmatch(resumeText); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil && years >= 0 && years <= 50 {
				return years
			}
		}
	}
	return estimateExperienceFromHistory(resumeText)
}

func estimateExperienceFromHistory(resumeText string) int {
	matches := calendarYearRe.FindAllString(resumeText, -1)
	if len(matches) < 2 {
		return 0
	}
	years := make([]int, 0, len(matches))
	for _, m := range matches {
		y, _ := strconv.Atoi(m)
		years = append(years, y)
	}
	sort.Ints(years)
	span := years[len(years)-1] - years[0] + 1
	return min(span, 20)
}

func experienceLevelToYears(level string) int {
	if years, ok := experienceLevelYears[strings.ToLower(level)]; ok {
		return years
	}
	return 3
}

// educationMatchScore compares degrees found in the education section
// against the level the job asks for. The checks are substring
// matches, so "ms" or "bs" anywhere in the section counts.
func educationMatchScore(resume *ParsedResume, job *JobDescription) float64 {
	educationText := strings.ToLower(resume.Sections.Education)
	hasBachelor := strings.Contains(educationText, "bachelor")
	hasMaster := strings.Contains(educationText, "master")
	hasPhD := strings.Contains(educationText, "phd")

	switch job.EducationLevel {
	case EducationHighSchool:
		return 100
	case EducationBachelor:
		if hasBachelor || hasMaster || hasPhD {
			return 100
		}
		return 40
	case EducationMaster:
		switch {
		case hasMaster || hasPhD:
			return 100
		case hasBachelor:
			return 60
		default:
			return 20
		}
	case EducationPhD:
		switch {
		case hasPhD:
			return 100
		case hasMaster:
			return 70
		case hasBachelor:
			return 40
		default:
			return 10
		}
	}
	return 0
}

// formatScore rewards the presence of the major resume sections.
func formatScore(resume *ParsedResume) float64 {
	score := 0.0
	if resume.Sections.Contact != "" {
		score += 15
	}
	if resume.Sections.Summary != "" {
		score += 15
	}
	if resume.Sections.Experience != "" {
		score += 30
	}
	if resume.Sections.Education != "" {
		score += 20
	}
	if resume.Sections.Skills != "" {
		score += 20
	}
	return score
}

// skillsContextScore rates where skills live in the resume (40%), how
// deep and recent the experience reads (30%), and how varied the
// matched skills are (30%).
func skillsContextScore(analysis *KeywordAnalysis, resume *ParsedResume) float64 {
	score := 0.0

	if total := len(analysis.ContextualSkills); total > 0 {
		inSkillsSection := 0
		for _, s := range analysis.ContextualSkills {
			if s.Context == ContextSkillsSection {
				inSkillsSection++
			}
		}
		score += float64(inSkillsSection) / float64(total) * 40
	}

	score += depthAndRecencyScore(resume) * 0.3
	score += varietyScore(analysis) * 0.3

	return math.Min(score, 100)
}

// depthAndRecencyScore combines the strongest proficiency wording in
// the experience section with how recent the latest calendar year is.
func depthAndRecencyScore(resume *ParsedResume) float64 {
	score := 0.0

	if resume.Sections.Experience != "" {
		experienceText := strings.ToLower(resume.Sections.Experience)
		maxDepth := 0
		for _, level := range vocab.DepthIndicators {
			for _, term := range level.Terms {
				if strings.Contains(experienceText, term) {
					maxDepth = max(maxDepth, level.Level)
					break
				}
			}
		}
		score += float64(maxDepth) * 20
	}

	if matches := calendarYearRe.FindAllString(resume.Text, -1); len(matches) > 0 {
		mostRecent := 0
		for _, m := range matches {
			if y, _ := strconv.Atoi(m); y > mostRecent {
				mostRecent = y
			}
		}
		switch age := time.Now().Year() - mostRecent; {
		case age <= 1:
			score += 20
		case age <= 3:
			score += 15
		case age <= 5:
			score += 10
		default:
			score += 5
		}
	}

	return math.Min(score, 100)
}

// varietyScore rewards matched skills spread across categories plus
// the overall match ratio. Transferable matches carry a suffix and so
// never hit the category lists.
func varietyScore(analysis *KeywordAnalysis) float64 {
	matched := make(map[string]bool, len(analysis.Matched))
	for _, skill := range analysis.Matched {
		matched[skill] = true
	}

	categoriesHit := 0
	for _, category := range vocab.VarietyCategories {
		for _, skill := range category.Skills {
			if matched[skill] {
				categoriesHit++
				break
			}
		}
	}
	score := math.Min(float64(categoriesHit)*20, 60)

	total := len(analysis.Matched) + len(analysis.Missing)
	relevance := float64(len(analysis.Matched)) / math.Max(float64(total), 1)
	score += relevance * 40

	return math.Min(score, 100)
}

// softSkillsBonus grants up to 10 points for soft skill overlap with
// the job, persona fit, and skill placement.
func softSkillsBonus(analysis *KeywordAnalysis, resume *ParsedResume, job *JobDescription) float64 {
	bonus := 0.0

	jobSoftSkills := extractSoftSkills(job.Text)
	matched := 0
	for _, skill := range analysis.SoftSkills {
		for _, jobSkill := range jobSoftSkills {
			if skill == jobSkill {
				matched++
				break
			}
		}
	}
	if matched > 0 {
		bonus += math.Min(float64(matched)*2, 5)
	}

	jobPersona := determineRolePersona(job.Text)
	if analysis.RolePersona == jobPersona {
		bonus += 3
	} else if personasCompatible(analysis.RolePersona, jobPersona) {
		bonus += 1.5
	}

	if total := len(analysis.ContextualSkills); total > 0 {
		inSkillsSection := 0
		for _, s := range analysis.ContextualSkills {
			if s.Context == ContextSkillsSection {
				inSkillsSection++
			}
		}
		bonus += float64(inSkillsSection) / float64(total) * 2
	}

	return math.Min(bonus, 10)
}

func personasCompatible(a, b string) bool {
	for _, pair := range compatiblePersonas {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// marketDemandBonus adds 2 points per matched skill with an elevated
// demand multiplier.
func marketDemandBonus(analysis *KeywordAnalysis) float64 {
	bonus := 0.0
	for _, skill := range analysis.Matched {
		if marketDemandMultiplier(skill) > 1.0 {
			bonus += 2
		}
	}
	return bonus
}

// checkRedFlags scans the resume for concerning language. Each
// distinct flag fires at most once. The penalty is negative.
func checkRedFlags(resumeText string) (float64, []string) {
	penalty := 0.0
	var flags []string
	for _, flag := range redFlags {
		if flag.pattern.MatchString(resumeText) {
			penalty += flag.penalty
			flags = append(flags, flag.reason)
		}
	}
	return penalty, flags
}

// titleAlignment compares the highest seniority title found in the
// resume with the highest found in the job text. Neutral 50 when
// either side has no recognizable title.
func titleAlignment(resumeText, jobText string) float64 {
	candidateLevel, candidateFound := highestTitleLevel(strings.ToLower(resumeText))
	requiredLevel, requiredFound := highestTitleLevel(strings.ToLower(jobText))
	if !candidateFound || !requiredFound {
		return 50
	}

	diff := candidateLevel - requiredLevel
	switch {
	case diff >= -1 && diff <= 1:
		return 100
	case diff >= -2 && diff <= 2:
		return 85
	case diff >= -3 && diff <= 3:
		return 70
	case diff > 3:
		return 40
	default:
		return math.Max(20, 60+float64(diff)*10)
	}
}

func highestTitleLevel(textLower string) (int, bool) {
	level := 0
	found := false
	for title, titleLevel := range vocab.TitleHierarchy {
		if strings.Contains(textLower, title) {
			found = true
			level = max(level, titleLevel)
		}
	}
	return level, found
}

// achievementBonus counts quantified accomplishments, 2 points each
// up to 15.
func achievementBonus(resumeText string) float64 {
	count := 0
	for _, pattern := range achievementPatterns {
		count += len(pattern.FindAllString(resumeText, -1))
	}
	return math.Min(15, float64(count)*2)
}

// applyStrictPenalties stacks multiplicative penalties for gaps that
// make a resume a hard sell regardless of its raw score.
func applyStrictPenalties(score float64, analysis *KeywordAnalysis, resume *ParsedResume, job *JobDescription) float64 {
	if analysis.TotalRequired > 0 {
		missingRate := float64(analysis.TotalRequired-analysis.RequiredMatched) / float64(analysis.TotalRequired)
		if missingRate > 0.3 {
			score *= 0.7
		}
	}

	if len(resume.Data.Skills) < 5 {
		score *= 0.8
	}

	if resume.Data.Email == "" || resume.Data.Phone == "" {
		score *= 0.9
	}

	// Level fit is judged on the years claimed in the experience
	// section, not the whole-resume estimate.
	sectionYears := 0
	if m := sectionYearsRe.FindStringSubmatch(resume.Sections.Experience); m != nil {
		sectionYears, _ = strconv.Atoi(m[1])
	}
	if job.ExperienceLevel == LevelSenior && sectionYears < 5 {
		score *= 0.6
	}
	if job.ExperienceLevel == LevelEntry && sectionYears > 5 {
		score *= 0.8
	}

	return score
}

// confidence grades how trustworthy the analysis is given its gaps.
func confidence(analysis *KeywordAnalysis, resume *ParsedResume) string {
	level := 100

	if analysis.TotalRequired > 0 && analysis.TotalRequired-analysis.RequiredMatched > 2 {
		level -= 20
	}

	summaryOnly := 0
	for _, s := range analysis.ContextualSkills {
		if s.Context == ContextSummarySection {
			summaryOnly++
		}
	}
	if summaryOnly > 0 {
		level -= 10
	}

	if len(checkFormatIssues(resume)) > 0 {
		level -= 15
	}

	if _, flags := checkRedFlags(resume.Text); len(flags) > 0 {
		level -= 10
	}

	switch {
	case level > 80:
		return ConfidenceHigh
	case level > 60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// checkFormatIssues lists structural problems with the resume.
func checkFormatIssues(resume *ParsedResume) []string {
	var issues []string

	if resume.Data.Email == "" && resume.Data.Phone == "" {
		issues = append(issues, "Missing contact information")
	}
	if resume.Sections.Experience == "" {
		issues = append(issues, "Missing experience section")
	}
	if resume.Sections.Education == "" {
		issues = append(issues, "Missing education section")
	}
	if resume.Sections.Skills == "" {
		issues = append(issues, "Missing skills section")
	}
	if resume.Sections.Experience != "" && len(resume.Sections.Experience) < 50 {
		issues = append(issues, "Experience section too brief")
	}
	if resume.Sections.Skills != "" && len(resume.Sections.Skills) < 20 {
		issues = append(issues, "Skills section too brief")
	}

	return issues
}

func round(v float64) int {
	return int(math.Round(v))
}
