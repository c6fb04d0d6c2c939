// Package ats scores resumes against job descriptions the way an
// applicant tracking system does: rule-based keyword extraction,
// section-aware matching, and a weighted composite score.
package ats

// Section context labels for contextual skill extraction.
const (
	ContextSkillsSection     = "skills_section"
	ContextExperienceSection = "experience_section"
	ContextProjectsSection   = "projects_section"
	ContextSummarySection    = "summary_section"
)

// Experience levels recognized in job descriptions.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// Education levels recognized in job descriptions.
const (
	EducationHighSchool = "high-school"
	EducationBachelor   = "bachelor"
	EducationMaster     = "master"
	EducationPhD        = "phd"
)

// Confidence levels for an analysis.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ResumeSections holds the text of each recognized resume section.
// A missing section is the empty string.
type ResumeSections struct {
	Contact    string `json:"contact,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Projects   string `json:"projects,omitempty"`
}

// ExtractedData is the structured data pulled out of a resume.
type ExtractedData struct {
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
}

// ParsedResume is a resume after section segmentation and data
// extraction.
type ParsedResume struct {
	Text     string         `json:"text"`
	Sections ResumeSections `json:"sections"`
	Data     ExtractedData  `json:"extractedData"`
}

// JobDescription is an analyzed job posting.
type JobDescription struct {
	Text             string   `json:"text"`
	Keywords         []string `json:"keywords"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	RequiredSkills   []string `json:"requiredSkills"`
	PreferredSkills  []string `json:"preferredSkills"`
	ExperienceLevel  string   `json:"experienceLevel"`
	EducationLevel   string   `json:"educationLevel"`
}

// ContextualSkill is a skill found in a specific resume section, with
// the section-discounted weight.
type ContextualSkill struct {
	Skill   string  `json:"skill"`
	Weight  float64 `json:"weight"`
	Context string  `json:"context"`
}

// KeywordAnalysis is the result of matching resume skills against a
// job description. Transferable matches carry a " (transferable)"
// suffix on the skill name.
type KeywordAnalysis struct {
	Matched          []string          `json:"matched"`
	Missing          []string          `json:"missing"`
	Score            int               `json:"score"`
	Suggestions      []string          `json:"suggestions"`
	RequiredMatched  int               `json:"requiredSkillsMatched"`
	PreferredMatched int               `json:"preferredSkillsMatched"`
	TotalRequired    int               `json:"totalRequiredSkills"`
	TotalPreferred   int               `json:"totalPreferredSkills"`
	Feedback         []string          `json:"feedback"`
	SoftSkills       []string          `json:"softSkillsMatched"`
	RolePersona      string            `json:"rolePersona"`
	ContextualSkills []ContextualSkill `json:"contextualSkills"`
}

// ScoreBreakdown is the per-dimension score summary shown to callers.
type ScoreBreakdown struct {
	Overall         int `json:"overall"`
	KeywordMatch    int `json:"keywordMatch"`
	SkillsMatch     int `json:"skillsMatch"`
	ExperienceMatch int `json:"experienceMatch"`
	EducationMatch  int `json:"educationMatch"`
}

// KeywordMatch reports how one job-description keyword fared against
// the resume.
type KeywordMatch struct {
	Keyword    string `json:"keyword"`
	Found      bool   `json:"found"`
	Count      int    `json:"count"`
	Importance string `json:"importance"` // high, medium, low
}

// AnalysisResult is the full bundle produced by one analysis run.
type AnalysisResult struct {
	ID              string           `json:"id"`
	Score           ScoreBreakdown   `json:"score"`
	KeywordMatches  []KeywordMatch   `json:"keywordMatches"`
	MissingKeywords []string         `json:"missingKeywords"`
	Suggestions     []string         `json:"suggestions"`
	Feedback        []string         `json:"feedback"`
	Confidence      string           `json:"confidence"`
	FormatIssues    []string         `json:"formatIssues,omitempty"`
	ResumeText      string           `json:"resumeText"`
	Resume          *ParsedResume    `json:"parsedResume"`
	Job             *JobDescription  `json:"parsedJobDescription"`
	Keywords        *KeywordAnalysis `json:"keywordAnalysis"`
}
