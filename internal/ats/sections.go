package ats

import (
	"regexp"
	"strings"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+`)
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// sectionHeaders maps a section name to the substrings that mark its
// header line. Scan order matters: the first matching entry wins.
var sectionHeaders = []struct {
	name    string
	markers []string
}{
	{"contact", []string{"contact", "personal"}},
	{"summary", []string{"summary", "objective", "profile"}},
	{"experience", []string{"experience", "work history"}},
	{"education", []string{"education", "academic"}},
	{"skills", []string{"skills", "technologies"}},
	{"projects", []string{"projects", "portfolio"}},
}

// ParseResume segments resume text into sections and extracts the
// structured data from them.
func ParseResume(text string) *ParsedResume {
	sections := ExtractSections(text)
	return &ParsedResume{
		Text:     text,
		Sections: sections,
		Data:     extractData(text, sections),
	}
}

// ExtractSections splits resume text into recognized sections. A line
// whose lowercase form contains a header marker starts that section;
// everything up to the next header belongs to it. Text before the
// first header is dropped.
func ExtractSections(text string) ResumeSections {
	var sections ResumeSections

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	current := ""
	var content []string
	flush := func() {
		if current != "" && len(content) > 0 {
			setSection(&sections, current, strings.Join(content, "\n"))
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		header := ""
		for _, h := range sectionHeaders {
			for _, marker := range h.markers {
				if strings.Contains(lower, marker) {
					header = h.name
					break
				}
			}
			if header != "" {
				break
			}
		}
		if header != "" {
			flush()
			current = header
			content = nil
		} else {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

func setSection(s *ResumeSections, name, content string) {
	switch name {
	case "contact":
		s.Contact = content
	case "summary":
		s.Summary = content
	case "experience":
		s.Experience = content
	case "education":
		s.Education = content
	case "skills":
		s.Skills = content
	case "projects":
		s.Projects = content
	}
}

// extractData pulls skills, experience and education keywords, and
// contact details out of the resume. Each extraction prefers the
// matching section and falls back to the whole text.
func extractData(text string, sections ResumeSections) ExtractedData {
	skillsText := sections.Skills
	if skillsText == "" {
		skillsText = text
	}
	experienceText := sections.Experience
	if experienceText == "" {
		experienceText = text
	}
	educationText := sections.Education
	if educationText == "" {
		educationText = text
	}
	contactText := sections.Contact
	if contactText == "" {
		contactText = text
	}

	return ExtractedData{
		Skills:     extractKeywords(skillsText, vocab.Skills),
		Experience: extractKeywords(experienceText, vocab.ExperienceKeywords),
		Education:  extractKeywords(educationText, vocab.EducationKeywords),
		Name:       extractName(contactText),
		Email:      emailRe.FindString(contactText),
		Phone:      phoneRe.FindString(contactText),
	}
}

// extractName returns the first line that looks like a capitalized
// first and last name.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if nameRe.MatchString(line) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
