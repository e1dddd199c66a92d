package performance

import (
	"fmt"
	"strings"
	"time"
)

// Subject is a fixed category of question content.
type Subject int

const (
	Math Subject = iota
	Language
	Science
	SocialStudies
	ForeignLanguage
	GeneralKnowledge
)

// Subjects lists every subject in declared order. Components that report
// "for all subjects" iterate this slice, never a map.
var Subjects = []Subject{
	Math,
	Language,
	Science,
	SocialStudies,
	ForeignLanguage,
	GeneralKnowledge,
}

var subjectNames = map[Subject]string{
	Math:             "Math",
	Language:         "Language",
	Science:          "Science",
	SocialStudies:    "SocialStudies",
	ForeignLanguage:  "ForeignLanguage",
	GeneralKnowledge: "GeneralKnowledge",
}

func (s Subject) String() string {
	if name, ok := subjectNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Subject(%d)", int(s))
}

// ParseSubject converts a canonical subject name (case-insensitive) to a Subject.
func ParseSubject(name string) (Subject, error) {
	for _, s := range Subjects {
		if strings.EqualFold(subjectNames[s], name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown subject %q", name)
}

// MarshalText encodes the subject by name.
func (s Subject) MarshalText() ([]byte, error) {
	if _, ok := subjectNames[s]; !ok {
		return nil, fmt.Errorf("invalid subject %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a subject name.
func (s *Subject) UnmarshalText(b []byte) error {
	v, err := ParseSubject(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Difficulty is the tier of a question.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in declared order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty converts a difficulty name (case-insensitive) to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", name)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if d < Easy || d > Hard {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

const (
	// NoAnswer is the chosen index recorded when the learner did not answer.
	NoAnswer = -1

	// NoResponseTime marks a record without a measurable response time,
	// e.g. the opponent's forced-wrong record.
	NoResponseTime = -1.0
)

// AnswerRecord is one answer event. Records are immutable once created.
type AnswerRecord struct {
	QuestionID      string     `json:"question_id"`
	QuestionText    string     `json:"question_text"`
	Subject         Subject    `json:"subject"`
	Difficulty      Difficulty `json:"difficulty"`
	Correct         bool       `json:"correct"`
	ChosenIndex     int        `json:"chosen_index"`
	CorrectIndex    int        `json:"correct_index"`
	ResponseSeconds float64    `json:"response_seconds"`
	Timestamp       string     `json:"timestamp"`
	SessionID       string     `json:"session_id"`
}

// Time returns the parsed timestamp of the record.
func (r AnswerRecord) Time() time.Time {
	return ParseTimestamp(r.Timestamp)
}

// HasResponseTime reports whether the record carries a measurable response time.
func (r AnswerRecord) HasResponseTime() bool {
	return r.ResponseSeconds > 0
}
