package ats

import "strings"

// fuzzyThreshold is the minimum normalized similarity for the fuzzy
// matching pass.
const fuzzyThreshold = 0.8

// extractKeywords finds vocabulary terms in text in three passes:
// exact substring matches, synonym matches resolved to their canonical
// skill, and a fuzzy pass for near misses. The synonym pass scans the
// full synonym table whatever keyword list is in play, so a synonym
// hit can surface a canonical skill that the list itself would not.
// The result keeps first-seen order with no duplicates.
func extractKeywords(text string, keywordList []string) []string {
	textLower := strings.ToLower(text)

	var found []string
	seen := make(map[string]bool)
	add := func(keyword string) {
		if !seen[keyword] {
			seen[keyword] = true
			found = append(found, keyword)
		}
	}

	// First pass: exact matches
	for _, keyword := range keywordList {
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			add(keyword)
		}
	}

	// Second pass: synonym matches
	for _, mainSkill := range vocab.Synonyms.keys {
		if seen[mainSkill] {
			continue
		}
		for _, synonym := range vocab.Synonyms.byName[mainSkill] {
			if strings.Contains(textLower, strings.ToLower(synonym)) {
				add(mainSkill)
				break
			}
		}
	}

	// Third pass: fuzzy matching against the whole text
	for _, keyword := range keywordList {
		if seen[keyword] {
			continue
		}
		if Similarity(textLower, strings.ToLower(keyword)) > fuzzyThreshold {
			add(keyword)
		}
	}

	return found
}
