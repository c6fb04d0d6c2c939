package ats

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/vansh2503/JobNest/internal/errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TextExtractor turns a resume document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, r io.Reader, name string) (string, error)
}

// Analyzer runs the full analysis pipeline: extract, parse, match,
// score.
type Analyzer struct {
	extractor TextExtractor
	logger    *errors.Logger
	tracer    oteltrace.Tracer
}

// NewAnalyzer creates an analyzer. The extractor may be nil when only
// Analyze (plain text in) is used.
func NewAnalyzer(extractor TextExtractor, logger *errors.Logger) *Analyzer {
	return &Analyzer{
		extractor: extractor,
		logger:    logger,
		tracer:    otel.Tracer("jobnest.ats"),
	}
}

// AnalyzeFile extracts text from the resume file at path and analyzes
// it against the job description text.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path, jobText string) (*AnalysisResult, error) {
	ctx, span := a.tracer.Start(ctx, "ats.analyze_file")
	defer span.End()
	span.SetAttributes(attribute.String("resume.path", path))

	if a.extractor == nil {
		return nil, errors.NewInternalError(errors.ErrCodeInvalidRequest,
			"No text extractor configured", nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"Cannot open resume file", err).WithContext("path", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			a.logger.Warn("Failed to close resume file", "path", path, "error", cerr)
		}
	}()

	text, err := a.extractor.ExtractText(ctx, file, path)
	if err != nil {
		return nil, err
	}

	return a.Analyze(ctx, text, jobText)
}

// Analyze parses both documents and produces the full result bundle.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*AnalysisResult, error) {
	_, span := a.tracer.Start(ctx, "ats.analyze")
	defer span.End()

	resume := ParseResume(resumeText)
	job := ParseJobDescription(jobText)
	analysis := AnalyzeKeywords(resume, job)
	overall, feedback := scoreResume(resume, job, analysis)

	span.SetAttributes(
		attribute.Int("ats.score", overall),
		attribute.Int("ats.keywords.matched", len(analysis.Matched)),
		attribute.Int("ats.keywords.missing", len(analysis.Missing)),
	)

	result := &AnalysisResult{
		ID: uuid.NewString(),
		Score: ScoreBreakdown{
			Overall:         overall,
			KeywordMatch:    analysis.Score,
			SkillsMatch:     round(float64(len(resume.Data.Skills)) / float64(max(len(job.Keywords), 1)) * 100),
			ExperienceMatch: round(float64(len(resume.Data.Experience)) / 5 * 100),
			EducationMatch:  round(float64(len(resume.Data.Education)) / 3 * 100),
		},
		KeywordMatches:  buildKeywordMatches(resume, job, analysis),
		MissingKeywords: analysis.Missing,
		Suggestions:     analysis.Suggestions,
		Feedback:        feedback,
		Confidence:      confidence(analysis, resume),
		FormatIssues:    checkFormatIssues(resume),
		ResumeText:      resumeText,
		Resume:          resume,
		Job:             job,
		Keywords:        analysis,
	}

	a.logger.Info("Analysis completed",
		"analysis_id", result.ID,
		"score", overall,
		"confidence", result.Confidence,
		"required_matched", analysis.RequiredMatched,
		"required_total", analysis.TotalRequired)

	return result, nil
}

// buildKeywordMatches reports each job keyword's presence in the
// resume, with a deterministic importance grade from the skill weight
// table.
func buildKeywordMatches(resume *ParsedResume, job *JobDescription, analysis *KeywordAnalysis) []KeywordMatch {
	resumeLower := strings.ToLower(resume.Text)

	matched := make(map[string]bool, len(analysis.Matched))
	for _, skill := range analysis.Matched {
		matched[skill] = true
	}

	results := make([]KeywordMatch, 0, len(job.Keywords))
	for _, keyword := range job.Keywords {
		results = append(results, KeywordMatch{
			Keyword:    keyword,
			Found:      matched[keyword],
			Count:      strings.Count(resumeLower, strings.ToLower(keyword)),
			Importance: keywordImportance(keyword),
		})
	}
	return results
}

func keywordImportance(keyword string) string {
	switch w := skillWeight(keyword); {
	case w >= 3:
		return "high"
	case w == 2:
		return "medium"
	default:
		return "low"
	}
}
