package archive

import "github.com/abhisek/quizduel/internal/performance"

func subjectNames() []any {
	names := make([]any, 0, len(performance.Subjects))
	for _, s := range performance.Subjects {
		names = append(names, s.String())
	}
	return names
}

func difficultyNames() []any {
	names := make([]any, 0, len(performance.Difficulties))
	for _, d := range performance.Difficulties {
		names = append(names, d.String())
	}
	return names
}

// documentSchema describes a serialized set of performance logs.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "integer", "const": Version},
		"learners": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"learner_id":   map[string]any{"type": "string", "minLength": 1},
					"display_name": map[string]any{"type": "string"},
					"records":      map[string]any{"type": "array", "items": recordSchema},
				},
				"required":             []any{"learner_id", "display_name", "records"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "learners"},
	"additionalProperties": false,
}

var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question_id":      map[string]any{"type": "string"},
		"question_text":    map[string]any{"type": "string"},
		"subject":          map[string]any{"enum": subjectNames()},
		"difficulty":       map[string]any{"enum": difficultyNames()},
		"correct":          map[string]any{"type": "boolean"},
		"chosen_index":     map[string]any{"type": "integer", "minimum": -1},
		"correct_index":    map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
		"response_seconds": map[string]any{"type": "number"},
		"timestamp":        map[string]any{"type": "string"},
		"session_id":       map[string]any{"type": "string"},
	},
	"required": []any{
		"question_id", "question_text", "subject", "difficulty", "correct",
		"chosen_index", "correct_index", "response_seconds", "timestamp", "session_id",
	},
	"additionalProperties": false,
}
