package advisor

import "github.com/abhisek/contentquiz/internal/llm"

// AnalysisSchema defines the JSON schema for the advisory analysis.
var AnalysisSchema = &llm.Schema{
	Name:        "content-analysis",
	Description: "Short, encouraging analysis of a content strategy self-assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Encouraging overview of the answers (2-4 sentences)",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
				"description": "1-3 things the business already does well (5-12 words each)",
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
				"description": "1-3 concrete next steps, most important first (5-12 words each)",
			},
		},
		"required":             []any{"summary", "strengths", "next_steps"},
		"additionalProperties": false,
	},
}
