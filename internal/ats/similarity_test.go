package ats

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{
			name:     "identical strings",
			a:        "javascript",
			b:        "javascript",
			expected: 1.0,
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 1.0,
		},
		{
			name:     "one empty",
			a:        "react",
			b:        "",
			expected: 0.0,
		},
		{
			name:     "single substitution",
			a:        "javascript",
			b:        "javascripd",
			expected: 0.9,
		},
		{
			name:     "single deletion",
			a:        "javascript",
			b:        "javascrip",
			expected: 0.9,
		},
		{
			name:     "kitten sitting",
			a:        "kitten",
			b:        "sitting",
			expected: 1.0 - 3.0/7.0,
		},
		{
			name:     "completely different",
			a:        "abc",
			b:        "xyz",
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"kubernetes", "kubernetis"},
		{"postgres", "postgresql"},
		{"", "docker"},
		{"react", "angular"},
	}

	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but Similarity(%q, %q) = %v",
				pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

func BenchmarkSimilarity(b *testing.B) {
	b.Run("short strings", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Similarity("javascript", "javascrip")
		}
	})

	b.Run("long strings", func(b *testing.B) {
		a := "senior software engineer with experience in distributed systems"
		c := "senior software developer with expertise in distributed services"
		for i := 0; i < b.N; i++ {
			Similarity(a, c)
		}
	})
}
