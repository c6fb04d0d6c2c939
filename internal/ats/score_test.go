package ats

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"
)

func TestExperienceCurve(t *testing.T) {
	tests := []struct {
		candidate int
		required  int
		expected  float64
	}{
		{5, 5, 100},
		{7, 5, 100},
		{8, 5, 85},
		{11, 5, 70},
		{12, 5, 50},
		{16, 5, 30},
		{0, 5, 35},
		{1, 5, 40},
		{0, 15, 10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_vs_%d", tt.candidate, tt.required), func(t *testing.T) {
			if got := experienceCurve(tt.candidate, tt.required); got != tt.expected {
				t.Errorf("experienceCurve(%d, %d) = %v, want %v",
					tt.candidate, tt.required, got, tt.expected)
			}
		})
	}
}

func TestExperienceMatchSeniorFiveYears(t *testing.T) {
	resume := ParseResume("Senior Engineer\n5 years of experience shipping production systems")
	job := &JobDescription{ExperienceLevel: LevelSenior}

	if got := experienceMatchScore(resume, job); got != 100 {
		t.Errorf("experienceMatchScore = %v, want 100", got)
	}
}

func TestExtractYearsOfExperience(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"explicit years", "5 years of experience", 5},
		{"years after colon", "experience: 7 years", 7},
		{"yrs abbreviation", "3 yrs of experience", 3},
		{"implausible count ignored", "100 years of experience", 0},
		{"calendar span fallback", "acme corp 2018 to 2023", 6},
		{"single year is not a span", "joined in 2022", 0},
		{"no signal", "builds things", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractYearsOfExperience(tt.text); got != tt.expected {
				t.Errorf("extractYearsOfExperience(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestRequiredSkillsCurve(t *testing.T) {
	tests := []struct {
		name     string
		matched  int
		total    int
		expected float64
	}{
		{"no requirements", 0, 0, 60},
		{"low coverage", 1, 3, 1.0 / 3 * 40},
		{"mid coverage", 2, 3, 40 + (2.0/3-0.5)*40},
		{"full coverage", 3, 3, 68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := &KeywordAnalysis{RequiredMatched: tt.matched, TotalRequired: tt.total}
			got := requiredSkillsCurve(analysis)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("requiredSkillsCurve(%d/%d) = %v, want %v",
					tt.matched, tt.total, got, tt.expected)
			}
		})
	}
}

func TestEducationMatchScore(t *testing.T) {
	tests := []struct {
		name      string
		education string
		required  string
		expected  float64
	}{
		{"high school always passes", "", EducationHighSchool, 100},
		{"bachelor satisfied", "bachelor of science", EducationBachelor, 100},
		{"master satisfies bachelor", "master of science", EducationBachelor, 100},
		{"bachelor missing", "diploma", EducationBachelor, 40},
		{"master satisfied", "master of science", EducationMaster, 100},
		{"bachelor under master", "bachelor of arts", EducationMaster, 60},
		{"nothing under master", "", EducationMaster, 20},
		{"phd satisfied", "phd in physics", EducationPhD, 100},
		{"master under phd", "master degree", EducationPhD, 70},
		{"bachelor under phd", "bachelor degree", EducationPhD, 40},
		{"nothing under phd", "", EducationPhD, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume := &ParsedResume{Sections: ResumeSections{Education: tt.education}}
			job := &JobDescription{EducationLevel: tt.required}
			if got := educationMatchScore(resume, job); got != tt.expected {
				t.Errorf("educationMatchScore = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormatScoreMissingEducation(t *testing.T) {
	full := &ParsedResume{Sections: ResumeSections{
		Contact:    "x",
		Summary:    "x",
		Experience: "x",
		Education:  "x",
		Skills:     "x",
	}}
	noEducation := &ParsedResume{Sections: ResumeSections{
		Contact:    "x",
		Summary:    "x",
		Experience: "x",
		Skills:     "x",
	}}

	if got := formatScore(full); got != 100 {
		t.Errorf("formatScore(full) = %v, want 100", got)
	}
	if got := formatScore(noEducation); got != 80 {
		t.Errorf("formatScore(no education) = %v, want 80", got)
	}
}

func TestCheckRedFlags(t *testing.T) {
	penalty, flags := checkRedFlags("was terminated from previous role")
	if penalty != -10 {
		t.Errorf("penalty = %v, want -10", penalty)
	}
	if len(flags) != 1 || flags[0] != "Negative employment language" {
		t.Errorf("flags = %v", flags)
	}

	// The same flag fires once no matter how often it appears.
	penalty, flags = checkRedFlags("terminated once, terminated twice")
	if penalty != -10 || len(flags) != 1 {
		t.Errorf("repeated mention: penalty = %v, flags = %v", penalty, flags)
	}

	// Distinct flags stack.
	penalty, flags = checkRedFlags("terminated after job hopping concerns")
	if penalty != -18 || len(flags) != 2 {
		t.Errorf("stacked flags: penalty = %v, flags = %v", penalty, flags)
	}

	penalty, flags = checkRedFlags("a spotless history")
	if penalty != 0 || len(flags) != 0 {
		t.Errorf("clean text: penalty = %v, flags = %v", penalty, flags)
	}
}

func TestScoreResumeRedFlagFeedback(t *testing.T) {
	resume := ParseResume("John Smith\nSkills\nReact, Node.js\nExperience\nwas terminated from previous role")
	job := ParseJobDescription("React developer needed")

	_, feedback := scoreResume(resume, job, AnalyzeKeywords(resume, job))

	found := false
	for _, line := range feedback {
		if strings.Contains(line, "Red flags detected: Negative employment language (-10% penalty)") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected red flag feedback, got %v", feedback)
	}
}

func TestTitleAlignment(t *testing.T) {
	tests := []struct {
		name     string
		resume   string
		job      string
		expected float64
	}{
		{"same level", "senior engineer", "senior developer", 100},
		{"three below", "junior developer", "senior role", 70},
		{"far above", "principal engineer", "junior role", 40},
		{"far below", "intern", "cto of platform", 20},
		{"no title in resume", "gardener", "senior developer", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleAlignment(tt.resume, tt.job); got != tt.expected {
				t.Errorf("titleAlignment(%q, %q) = %v, want %v", tt.resume, tt.job, got, tt.expected)
			}
		})
	}
}

func TestAchievementBonus(t *testing.T) {
	text := "Increased revenue by 40% and cut costs $2,000 while leading 10 people"
	if got := achievementBonus(text); got != 6 {
		t.Errorf("achievementBonus = %v, want 6", got)
	}

	if got := achievementBonus("did some work"); got != 0 {
		t.Errorf("achievementBonus(plain) = %v, want 0", got)
	}

	// Caps at 15.
	many := strings.Repeat("improved 10% ", 20)
	if got := achievementBonus(many); got != 15 {
		t.Errorf("achievementBonus(many) = %v, want 15", got)
	}
}

func TestVarietyScore(t *testing.T) {
	// Three categories hit, everything matched.
	analysis := &KeywordAnalysis{Matched: []string{"react", "postgresql", "aws"}}
	if got := varietyScore(analysis); got != 100 {
		t.Errorf("varietyScore = %v, want 100", got)
	}

	// A transferable match carries a suffix and misses the category lists.
	analysis = &KeywordAnalysis{Matched: []string{"postgresql (transferable)"}}
	if got := varietyScore(analysis); got != 40 {
		t.Errorf("varietyScore(transferable only) = %v, want 40", got)
	}
}

func TestDepthAndRecencyScore(t *testing.T) {
	text := fmt.Sprintf("expert in distributed systems since %d", time.Now().Year())
	resume := &ParsedResume{
		Text:     text,
		Sections: ResumeSections{Experience: text},
	}

	if got := depthAndRecencyScore(resume); got != 100 {
		t.Errorf("depthAndRecencyScore = %v, want 100", got)
	}
}

func TestMarketDemandBonus(t *testing.T) {
	analysis := &KeywordAnalysis{Matched: []string{"react", "aws"}}
	if got := marketDemandBonus(analysis); got != 4 {
		t.Errorf("marketDemandBonus = %v, want 4", got)
	}

	analysis = &KeywordAnalysis{Matched: []string{"css"}}
	if got := marketDemandBonus(analysis); got != 0 {
		t.Errorf("marketDemandBonus(css) = %v, want 0", got)
	}
}

func TestApplyStrictPenalties(t *testing.T) {
	fullData := ExtractedData{
		Skills: []string{"a", "b", "c", "d", "e"},
		Email:  "x@example.com",
		Phone:  "5551234567",
	}

	t.Run("missing required rate", func(t *testing.T) {
		analysis := &KeywordAnalysis{TotalRequired: 10, RequiredMatched: 5}
		resume := &ParsedResume{Data: fullData}
		job := &JobDescription{ExperienceLevel: LevelMid}
		if got := applyStrictPenalties(100, analysis, resume, job); got != 70 {
			t.Errorf("got %v, want 70", got)
		}
	})

	t.Run("senior with short history", func(t *testing.T) {
		resume := &ParsedResume{
			Data:     fullData,
			Sections: ResumeSections{Experience: "2 years at a startup"},
		}
		job := &JobDescription{ExperienceLevel: LevelSenior}
		if got := applyStrictPenalties(100, &KeywordAnalysis{}, resume, job); got != 60 {
			t.Errorf("got %v, want 60", got)
		}
	})

	t.Run("entry with long history", func(t *testing.T) {
		resume := &ParsedResume{
			Data:     fullData,
			Sections: ResumeSections{Experience: "8 years at a startup"},
		}
		job := &JobDescription{ExperienceLevel: LevelEntry}
		if got := applyStrictPenalties(100, &KeywordAnalysis{}, resume, job); got != 80 {
			t.Errorf("got %v, want 80", got)
		}
	})

	t.Run("missing contact", func(t *testing.T) {
		resume := &ParsedResume{Data: ExtractedData{
			Skills: fullData.Skills,
			Phone:  fullData.Phone,
		}}
		job := &JobDescription{ExperienceLevel: LevelMid}
		if got := applyStrictPenalties(100, &KeywordAnalysis{}, resume, job); got != 90 {
			t.Errorf("got %v, want 90", got)
		}
	})

	t.Run("thin skill list", func(t *testing.T) {
		resume := &ParsedResume{Data: ExtractedData{
			Skills: []string{"a"},
			Email:  fullData.Email,
			Phone:  fullData.Phone,
		}}
		job := &JobDescription{ExperienceLevel: LevelMid}
		if got := applyStrictPenalties(100, &KeywordAnalysis{}, resume, job); got != 80 {
			t.Errorf("got %v, want 80", got)
		}
	})
}

func TestConfidence(t *testing.T) {
	cleanResume := &ParsedResume{
		Text: "a spotless record",
		Sections: ResumeSections{
			Experience: strings.Repeat("shipped features across teams ", 3),
			Education:  "bachelor of science",
			Skills:     "react, node.js, postgresql",
		},
		Data: ExtractedData{Email: "x@example.com", Phone: "5551234567"},
	}

	if got := confidence(&KeywordAnalysis{}, cleanResume); got != ConfidenceHigh {
		t.Errorf("clean resume confidence = %q, want high", got)
	}

	gapped := &KeywordAnalysis{TotalRequired: 5, RequiredMatched: 1}
	if got := confidence(gapped, cleanResume); got != ConfidenceMedium {
		t.Errorf("gapped confidence = %q, want medium", got)
	}

	messyResume := &ParsedResume{Text: "was terminated last year"}
	if got := confidence(gapped, messyResume); got != ConfidenceLow {
		t.Errorf("messy confidence = %q, want low", got)
	}
}

func TestConfidenceSummaryOnlySkills(t *testing.T) {
	// One format issue keeps the base at 85; summary-only skills tip it
	// to medium.
	resume := &ParsedResume{
		Text: "plain",
		Sections: ResumeSections{
			Experience: strings.Repeat("shipped features across teams ", 3),
			Education:  "bachelor of science",
			Skills:     "go",
		},
		Data: ExtractedData{Email: "x@example.com", Phone: "5551234567"},
	}

	if got := confidence(&KeywordAnalysis{}, resume); got != ConfidenceHigh {
		t.Errorf("without summary skills = %q, want high", got)
	}

	analysis := &KeywordAnalysis{ContextualSkills: []ContextualSkill{
		{Skill: "python", Context: ContextSummarySection, Weight: 1},
	}}
	if got := confidence(analysis, resume); got != ConfidenceMedium {
		t.Errorf("with summary skills = %q, want medium", got)
	}
}

func TestCheckFormatIssues(t *testing.T) {
	issues := checkFormatIssues(&ParsedResume{})
	want := []string{
		"Missing contact information",
		"Missing experience section",
		"Missing education section",
		"Missing skills section",
	}
	if len(issues) != len(want) {
		t.Fatalf("issues = %v", issues)
	}
	for i, w := range want {
		if issues[i] != w {
			t.Errorf("issues[%d] = %q, want %q", i, issues[i], w)
		}
	}

	brief := &ParsedResume{
		Sections: ResumeSections{Experience: "short stint", Education: "bs", Skills: strings.Repeat("go ", 10)},
		Data:     ExtractedData{Email: "x@example.com"},
	}
	issues = checkFormatIssues(brief)
	if len(issues) != 1 || issues[0] != "Experience section too brief" {
		t.Errorf("issues = %v", issues)
	}
}

func TestCalculateATSScoreBounds(t *testing.T) {
	cases := []struct {
		name   string
		resume string
		job    string
	}{
		{"empty inputs", "", ""},
		{"strong candidate", sampleResume, sampleJob},
		{"weak candidate", "was terminated, job hopping, performance issues", sampleJob},
		{"resume only", sampleResume, ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			score := CalculateATSScore(ParseResume(tt.resume), ParseJobDescription(tt.job))
			if score < 0 || score > 100 {
				t.Errorf("score %d out of range", score)
			}
		})
	}
}

func BenchmarkCalculateATSScore(b *testing.B) {
	resume := ParseResume(sampleResume)
	job := ParseJobDescription(sampleJob)

	for i := 0; i < b.N; i++ {
		CalculateATSScore(resume, job)
	}
}
