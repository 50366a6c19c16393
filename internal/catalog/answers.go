package catalog

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// answersDocument is the on-disk form of a saved answer sheet:
//
//	catalog: v1.2.0
//	answers:
//	  1: 1d
//	  2: 2b
type answersDocument struct {
	Catalog string         `yaml:"catalog"`
	Answers map[int]string `yaml:"answers"`
}

// ParseAnswers decodes an answer sheet. Entries that do not match the
// catalog are kept; scoring skips them the same way it skips any answer it
// cannot resolve.
func ParseAnswers(data []byte) (Answers, error) {
	var doc answersDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	out := make(Answers, len(doc.Answers))
	for id, opt := range doc.Answers {
		if opt == "" {
			continue
		}
		out[id] = opt
	}
	return out, nil
}

// LoadAnswers reads an answer sheet from path.
func LoadAnswers(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	a, err := ParseAnswers(data)
	if err != nil {
		return nil, fmt.Errorf("answers %s: %w", path, err)
	}
	return a, nil
}

// Unknown returns the question ids in a whose question or option is not in
// c, in ascending order.
func (c *Catalog) Unknown(a Answers) []int {
	var ids []int
	for id, opt := range a {
		q, ok := c.Question(id)
		if !ok || !q.HasOption(opt) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
