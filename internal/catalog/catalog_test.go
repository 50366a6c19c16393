package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `
version: v1.0.0
title: Mini
questions:
  - id: 1
    text: First?
    options:
      - {id: a, text: "1", value: 1}
      - {id: b, text: "5", value: 5}
    feedback:
      - {range: [1, 2], diagnosis: low, recommendation: fix}
      - {range: [3], diagnosis: mid, recommendation: tune}
      - {range: [4, 5], diagnosis: high, recommendation: keep}
results:
  fallback: {title: Done, category: info}
`

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "v1.2.0", c.Version)
	assert.Equal(t, 10, c.Len())
	assert.NotNil(t, c.Results.Fallback)
}

func TestDefaultCatalogIsLintClean(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Empty(t, Lint(c))
}

func TestParse_Minimal(t *testing.T) {
	c, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	q, ok := c.Question(1)
	require.True(t, ok)
	assert.Equal(t, "First?", q.Text)
	assert.True(t, q.HasOption("b"))
	assert.False(t, q.HasOption("z"))
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "version: [unclosed"},
		{"no questions", "version: v1.0.0\nquestions: []\n"},
		{"single option", `
version: v1.0.0
questions:
  - id: 1
    text: Q
    options:
      - {id: a, text: A, value: 1}
`},
		{"value out of range", `
version: v1.0.0
questions:
  - id: 1
    text: Q
    options:
      - {id: a, text: A, value: 0}
      - {id: b, text: B, value: 6}
`},
		{"bad category", `
version: v1.0.0
questions:
  - id: 1
    text: Q
    options:
      - {id: a, text: A, value: 1}
      - {id: b, text: B, value: 2}
results:
  fallback: {title: X, category: great}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_Version(t *testing.T) {
	tests := []struct {
		version string
		wantErr string
	}{
		{"v1.0.0", ""},
		{"v1.9.3", ""},
		{"1.0.0", "not a semantic version"},
		{"v2.0.0", "not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			doc := strings.Replace(minimalDoc, "v1.0.0", tt.version, 1)
			_, err := Parse([]byte(doc))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalDoc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Mini", c.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Content Plan Health Check", c.Title)
}

func TestIsNumericScale(t *testing.T) {
	scale := func(texts ...string) Question {
		q := Question{ID: 1}
		for i, txt := range texts {
			q.Options = append(q.Options, Option{ID: txt, Text: txt, Value: i + 1})
		}
		return q
	}

	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{"digits", scale("1", "2", "3", "4", "5"), true},
		{"two chars", scale("1", "2", "3", "4", "10"), true},
		{"arabic digits", scale("١", "٢", "٣", "٤", "٥"), true},
		{"four options", scale("1", "2", "3", "4"), false},
		{"long label", scale("1", "2", "3", "4", "Great"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.IsNumericScale())
		})
	}
}

func TestAnswersClone(t *testing.T) {
	a := Answers{1: "a"}
	b := a.Clone()
	b[1] = "b"
	b[2] = "c"

	assert.Equal(t, Answers{1: "a"}, a)
}
