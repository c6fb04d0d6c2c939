package ats

import (
	"slices"
	"strings"
	"testing"
)

func TestAnalyzeKeywordsScoring(t *testing.T) {
	resume := ParseResume("5 years of experience building web apps. Skills: React, Node.js, MongoDB")
	job := &JobDescription{
		Text:            "Required: React, Node.js, PostgreSQL. Preferred: AWS.",
		RequiredSkills:  []string{"React", "Node.js", "PostgreSQL"},
		PreferredSkills: []string{"AWS"},
	}

	analysis := AnalyzeKeywords(resume, job)

	if analysis.RequiredMatched != 2 || analysis.TotalRequired != 3 {
		t.Errorf("required matched %d/%d, want 2/3",
			analysis.RequiredMatched, analysis.TotalRequired)
	}
	if analysis.PreferredMatched != 0 || analysis.TotalPreferred != 1 {
		t.Errorf("preferred matched %d/%d, want 0/1",
			analysis.PreferredMatched, analysis.TotalPreferred)
	}

	// round(66.67*0.7 + 0*0.3)
	if analysis.Score != 47 {
		t.Errorf("score = %d, want 47", analysis.Score)
	}

	if !slices.Contains(analysis.Missing, "postgresql") {
		t.Errorf("expected postgresql in missing %v", analysis.Missing)
	}
	if !slices.Contains(analysis.Missing, "aws") {
		t.Errorf("expected aws in missing %v", analysis.Missing)
	}
}

func TestAnalyzeKeywordsNoRequirements(t *testing.T) {
	resume := ParseResume("Skills: React")
	analysis := AnalyzeKeywords(resume, &JobDescription{})

	if analysis.Score != 100 {
		t.Errorf("score with no requirements = %d, want 100", analysis.Score)
	}
}

func TestAnalyzeKeywordsFullCoverage(t *testing.T) {
	resume := ParseResume("Skills: React, Node.js, PostgreSQL, AWS, Docker")
	job := &JobDescription{
		RequiredSkills:  []string{"react", "node.js"},
		PreferredSkills: []string{"docker"},
	}

	analysis := AnalyzeKeywords(resume, job)

	if analysis.Score != 100 {
		t.Errorf("score = %d, want 100", analysis.Score)
	}
	if len(analysis.Missing) != 0 {
		t.Errorf("expected nothing missing, got %v", analysis.Missing)
	}
}

func TestAnalyzeKeywordsTransferable(t *testing.T) {
	resume := ParseResume("Skills: JavaScript")
	job := &JobDescription{RequiredSkills: []string{"TypeScript"}}

	analysis := AnalyzeKeywords(resume, job)

	if !slices.Contains(analysis.Matched, "typescript (transferable)") {
		t.Fatalf("expected transferable match, got %v", analysis.Matched)
	}
	if analysis.RequiredMatched != 1 {
		t.Errorf("transferable match should count as matched, got %d", analysis.RequiredMatched)
	}

	found := false
	for _, line := range analysis.Feedback {
		if strings.Contains(line, "Transferable skills detected: 1 skills can be adapted") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected transferable feedback, got %v", analysis.Feedback)
	}
}

func TestTransferableMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		target   string
		expected float64
	}{
		{"direct match", []string{"react"}, "react", 1.0},
		{"adjacent skill", []string{"javascript"}, "typescript", 0.85},
		{"no relation", []string{"photoshop"}, "kubernetes", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transferableMatchScore(tt.skills, tt.target); got != tt.expected {
				t.Errorf("transferableMatchScore(%v, %q) = %v, want %v",
					tt.skills, tt.target, got, tt.expected)
			}
		})
	}
}

func TestGenerateSuggestions(t *testing.T) {
	job := &JobDescription{
		RequiredSkills:  []string{"react", "node.js", "postgresql", "docker"},
		PreferredSkills: []string{"aws"},
		ExperienceLevel: LevelSenior,
	}

	suggestions := generateSuggestions([]string{"react"}, job)

	if len(suggestions) == 0 || !strings.HasPrefix(suggestions[0], "CRITICAL: Add these required skills: ") {
		t.Fatalf("expected critical suggestion first, got %v", suggestions)
	}
	// At most three missing skills are named.
	if got := strings.Count(suggestions[0], ","); got > 2 {
		t.Errorf("critical suggestion names too many skills: %q", suggestions[0])
	}

	joined := strings.Join(suggestions, "\n")
	for _, want := range []string{
		"Add these preferred skills: aws",
		"Resume lacks senior-level skills and experience depth",
		"Add more technical skills to your resume",
		"Include quantifiable achievements and metrics",
		"Highlight relevant project experience",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing suggestion %q in %v", want, suggestions)
		}
	}
}

func TestDetermineRolePersona(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "developer text",
			text:     "software engineer doing full stack development and coding",
			expected: "developer",
		},
		{
			name:     "manager text",
			text:     "project manager with leadership and supervisor duties",
			expected: "manager",
		},
		{
			name:     "no hits falls to first persona",
			text:     "zzz",
			expected: "developer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineRolePersona(tt.text); got != tt.expected {
				t.Errorf("determineRolePersona(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractSkillsWithContext(t *testing.T) {
	resume := &ParsedResume{
		Sections: ResumeSections{
			Skills:     "react, docker",
			Experience: "shipped react features and kubernetes clusters",
		},
	}

	skills := extractSkillsWithContext(resume)

	byName := make(map[string]ContextualSkill)
	for _, s := range skills {
		byName[s.Skill] = s
	}

	// react lives in both sections; the skills section wins.
	if s, ok := byName["react"]; !ok || s.Context != ContextSkillsSection || s.Weight != 2.0 {
		t.Errorf("unexpected react context: %+v", s)
	}
	if s, ok := byName["docker"]; !ok || s.Context != ContextSkillsSection || s.Weight != 3.0 {
		t.Errorf("unexpected docker context: %+v", s)
	}
	// kubernetes only appears in experience, at the 0.8 discount.
	if s, ok := byName["kubernetes"]; !ok || s.Context != ContextExperienceSection || s.Weight != float64(3)*0.8 {
		t.Errorf("unexpected kubernetes context: %+v", s)
	}
}

func TestExtractSoftSkills(t *testing.T) {
	found := extractSoftSkills("Strong communication and leadership; mentoring junior staff")

	for _, want := range []string{"communication", "leadership", "mentoring"} {
		if !slices.Contains(found, want) {
			t.Errorf("expected %q in %v", want, found)
		}
	}
}
