package catalog

// documentSchema is the JSON Schema every catalog document must satisfy
// before it is decoded. Bracket partitioning is deliberately absent; see Lint.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "questions"},
	"properties": map[string]any{
		"version": map[string]any{"type": "string", "minLength": 1},
		"title":   map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    questionSchema,
		},
		"results": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"rules": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"result"},
						"properties": map[string]any{
							"name":   map[string]any{"type": "string"},
							"when":   map[string]any{"type": "object"},
							"result": resultSchema,
						},
					},
				},
				"fallback": resultSchema,
			},
		},
	},
}

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "text", "options"},
	"properties": map[string]any{
		"id":      map[string]any{"type": "integer"},
		"text":    map[string]any{"type": "string", "minLength": 1},
		"example": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "text", "value"},
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"text":  map[string]any{"type": "string", "minLength": 1},
					"value": map[string]any{"type": "integer", "minimum": MinValue, "maximum": MaxValue},
				},
			},
		},
		"feedback": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"range", "diagnosis", "recommendation"},
				"properties": map[string]any{
					"range": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "integer"},
					},
					"diagnosis":      map[string]any{"type": "string"},
					"recommendation": map[string]any{"type": "string"},
				},
			},
		},
	},
}

var resultSchema = map[string]any{
	"type":     "object",
	"required": []any{"title", "category"},
	"properties": map[string]any{
		"title":         map[string]any{"type": "string", "minLength": 1},
		"description":   map[string]any{"type": "string"},
		"category":      map[string]any{"type": "string", "enum": []any{"success", "warning", "info", "danger"}},
		"image_keyword": map[string]any{"type": "string"},
	},
}
