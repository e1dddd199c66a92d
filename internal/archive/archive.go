// Package archive reads and writes performance logs as a JSON document.
package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/quizduel/internal/performance"
)

// Version is the document format version.
const Version = 1

// Document is the serialized form of a set of learner logs.
type Document struct {
	Version  int          `json:"version"`
	Learners []LearnerLog `json:"learners"`
}

// LearnerLog is one learner's log inside a Document.
type LearnerLog struct {
	LearnerID   string                     `json:"learner_id"`
	DisplayName string                     `json:"display_name"`
	Records     []performance.AnswerRecord `json:"records"`
}

// ErrInvalidDocument is returned when input does not match the document schema.
type ErrInvalidDocument struct {
	Err error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid archive document: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error {
	return e.Err
}

// Encode writes the logs of the given learners as an indented document.
func Encode(w io.Writer, logs []*performance.Log) error {
	doc := Document{Version: Version, Learners: make([]LearnerLog, 0, len(logs))}
	for _, l := range logs {
		records := l.Records
		if records == nil {
			records = []performance.AnswerRecord{}
		}
		doc.Learners = append(doc.Learners, LearnerLog{
			LearnerID:   l.LearnerID,
			DisplayName: l.DisplayName,
			Records:     records,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}
	return nil
}

// Decode reads and validates a document, returning one log per learner
// in document order.
func Decode(r io.Reader) ([]*performance.Log, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile archive schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}

	logs := make([]*performance.Log, 0, len(doc.Learners))
	for _, l := range doc.Learners {
		logs = append(logs, &performance.Log{
			LearnerID:   l.LearnerID,
			DisplayName: l.DisplayName,
			Records:     l.Records,
		})
	}
	return logs, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledSchema compiles documentSchema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw bytes.
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quizduel-archive.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(schemaURL)
	})
	return schemaCompiled, schemaErr
}
