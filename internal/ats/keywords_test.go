package ats

import (
	"slices"
	"testing"
)

func TestExtractKeywordsExactMatches(t *testing.T) {
	found := extractKeywords("We use React and Docker daily", []string{"react", "docker", "python"})

	if len(found) < 2 || found[0] != "react" || found[1] != "docker" {
		t.Fatalf("expected [react docker ...], got %v", found)
	}
	if slices.Contains(found, "python") {
		t.Errorf("python should not match, got %v", found)
	}
}

func TestExtractKeywordsSynonyms(t *testing.T) {
	// The canonical skill never appears literally; only a synonym does.
	found := extractKeywords("deployed to amazon web services", []string{"aws"})

	if !slices.Contains(found, "aws") {
		t.Errorf("expected synonym match to surface aws, got %v", found)
	}
}

func TestExtractKeywordsFuzzy(t *testing.T) {
	// One deletion away from the keyword, above the 0.8 threshold.
	found := extractKeywords("javascrip", []string{"javascript"})
	if !slices.Contains(found, "javascript") {
		t.Errorf("expected fuzzy match for javascript, got %v", found)
	}

	// Far below the threshold.
	found = extractKeywords("accounting ledger review", []string{"javascript"})
	if slices.Contains(found, "javascript") {
		t.Errorf("did not expect fuzzy match, got %v", found)
	}
}

func TestExtractKeywordsNoDuplicates(t *testing.T) {
	found := extractKeywords("react react react", []string{"react", "react"})

	count := 0
	for _, keyword := range found {
		if keyword == "react" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected react exactly once, got %v", found)
	}
}

func TestExtractKeywordsDeterministicOrder(t *testing.T) {
	text := "Experience with React, Node.js, PostgreSQL, Docker, and Kubernetes on AWS"

	first := extractKeywords(text, vocab.Skills)
	for i := 0; i < 10; i++ {
		if again := extractKeywords(text, vocab.Skills); !slices.Equal(first, again) {
			t.Fatalf("extraction order changed between runs: %v vs %v", first, again)
		}
	}
}

func BenchmarkExtractKeywords(b *testing.B) {
	text := "Senior engineer with React, Node.js, PostgreSQL, Docker, Kubernetes, " +
		"Terraform, and AWS. Built CI/CD pipelines and mentored junior developers."

	for i := 0; i < b.N; i++ {
		extractKeywords(text, vocab.Skills)
	}
}
