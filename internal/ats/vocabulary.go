package ats

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/vocabulary.yaml
var vocabularyYAML []byte

// persona is an ordered entry in the role-persona table.
type persona struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type depthLevel struct {
	Level int      `yaml:"level"`
	Terms []string `yaml:"terms"`
}

type varietyCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

// synonymTable keeps the canonical skills in declaration order. The
// synonym pass walks the whole table, and the walk order decides the
// order of the extracted keyword list.
type synonymTable struct {
	keys   []string
	byName map[string][]string
}

func (t *synonymTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("synonyms: expected mapping, got kind %d", node.Kind)
	}
	t.byName = make(map[string][]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var synonyms []string
		if err := node.Content[i+1].Decode(&synonyms); err != nil {
			return err
		}
		if _, ok := t.byName[key]; !ok {
			t.keys = append(t.keys, key)
		}
		t.byName[key] = synonyms
	}
	return nil
}

// vocabulary is the full skill vocabulary loaded from the embedded
// data file. All terms are lowercase.
type vocabulary struct {
	Skills              []string                      `yaml:"skills"`
	ExperienceKeywords  []string                      `yaml:"experienceKeywords"`
	EducationKeywords   []string                      `yaml:"educationKeywords"`
	Synonyms            synonymTable                  `yaml:"synonyms"`
	Weights             map[string]int                `yaml:"weights"`
	SoftSkills          []string                      `yaml:"softSkills"`
	Personas            []persona                     `yaml:"personas"`
	Transferable        map[string][]string           `yaml:"transferable"`
	MarketDemand        map[string]float64            `yaml:"marketDemand"`
	TitleHierarchy      map[string]int                `yaml:"titleHierarchy"`
	IndustryMultipliers map[string]map[string]float64 `yaml:"industryMultipliers"`
	SoftSkillIndicators map[string][]string           `yaml:"softSkillIndicators"`
	DepthIndicators     []depthLevel                  `yaml:"depthIndicators"`
	VarietyCategories   []varietyCategory             `yaml:"varietyCategories"`
}

var vocab = mustLoadVocabulary()

func mustLoadVocabulary() *vocabulary {
	var v vocabulary
	if err := yaml.Unmarshal(vocabularyYAML, &v); err != nil {
		panic(fmt.Sprintf("ats: invalid embedded vocabulary: %v", err))
	}
	return &v
}

// skillWeight returns the granular weight for a skill, defaulting to 1.
func skillWeight(skill string) int {
	if w, ok := vocab.Weights[strings.ToLower(skill)]; ok {
		return w
	}
	return 1
}

// marketDemandMultiplier returns the demand multiplier for a skill,
// defaulting to 1.0.
func marketDemandMultiplier(skill string) float64 {
	if m, ok := vocab.MarketDemand[strings.ToLower(skill)]; ok {
		return m
	}
	return 1.0
}

// IndustryMultiplier returns the context multiplier for a skill within
// an industry, defaulting to 1.0 for unknown industries or skills.
func IndustryMultiplier(industry, skill string) float64 {
	if skills, ok := vocab.IndustryMultipliers[strings.ToLower(industry)]; ok {
		if m, ok := skills[strings.ToLower(skill)]; ok {
			return m
		}
	}
	return 1.0
}
