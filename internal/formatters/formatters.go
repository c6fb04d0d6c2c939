package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vansh2503/JobNest/internal/ats"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case *ats.AnalysisResult:
		return "AnalysisResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(*ats.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected *AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n", result.Score.Overall))
	output.WriteString(fmt.Sprintf("Confidence: %s\n\n", result.Confidence))

	output.WriteString("=== SCORE BREAKDOWN ===\n")
	output.WriteString(fmt.Sprintf("Keyword Match:    %d\n", result.Score.KeywordMatch))
	output.WriteString(fmt.Sprintf("Skills Match:     %d\n", result.Score.SkillsMatch))
	output.WriteString(fmt.Sprintf("Experience Match: %d\n", result.Score.ExperienceMatch))
	output.WriteString(fmt.Sprintf("Education Match:  %d\n\n", result.Score.EducationMatch))

	if len(result.KeywordMatches) > 0 {
		output.WriteString("=== KEYWORD MATCHES ===\n")
		for _, match := range result.KeywordMatches {
			status := "missing"
			if match.Found {
				status = fmt.Sprintf("found x%d", match.Count)
			}
			output.WriteString(fmt.Sprintf("- %s (%s, %s)\n", match.Keyword, status, match.Importance))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("=== MISSING KEYWORDS ===\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Feedback) > 0 {
		output.WriteString("=== FEEDBACK ===\n")
		for _, line := range result.Feedback {
			output.WriteString(fmt.Sprintf("- %s\n", line))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
		output.WriteString("\n")
	}

	if len(result.FormatIssues) > 0 {
		output.WriteString("=== FORMAT ISSUES ===\n")
		for _, issue := range result.FormatIssues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(*ats.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected *AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", result.Score.Overall))
	output.WriteString(fmt.Sprintf("**Confidence:** %s\n\n", result.Confidence))

	output.WriteString("## Score Breakdown\n\n")
	output.WriteString("| Component | Score |\n")
	output.WriteString("|-----------|-------|\n")
	output.WriteString(fmt.Sprintf("| Keyword Match | %d |\n", result.Score.KeywordMatch))
	output.WriteString(fmt.Sprintf("| Skills Match | %d |\n", result.Score.SkillsMatch))
	output.WriteString(fmt.Sprintf("| Experience Match | %d |\n", result.Score.ExperienceMatch))
	output.WriteString(fmt.Sprintf("| Education Match | %d |\n\n", result.Score.EducationMatch))

	if len(result.KeywordMatches) > 0 {
		output.WriteString("## Keyword Matches\n\n")
		output.WriteString("| Keyword | Found | Count | Importance |\n")
		output.WriteString("|---------|-------|-------|------------|\n")
		for _, match := range result.KeywordMatches {
			output.WriteString(fmt.Sprintf("| %s | %t | %d | %s |\n",
				match.Keyword, match.Found, match.Count, match.Importance))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Feedback) > 0 {
		output.WriteString("## Feedback\n\n")
		for _, line := range result.Feedback {
			output.WriteString(fmt.Sprintf("- %s\n", line))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
		output.WriteString("\n")
	}

	if len(result.FormatIssues) > 0 {
		output.WriteString("## Format Issues\n\n")
		for _, issue := range result.FormatIssues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
