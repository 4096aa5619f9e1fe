package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the closed set of question types. The upstream generator emits two
// independent booleans (is_multiple_choice, is_matching); we collapse them
// into one tag so the "both set" state cannot be represented.
type Kind string

const (
	KindSingleChoice   Kind = "single_choice"
	KindMultipleChoice Kind = "multiple_choice"
	KindMatching       Kind = "matching"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSingleChoice, KindMultipleChoice, KindMatching:
		return true
	}
	return false
}

// Answer holds exactly one of three shapes, matching the question kind:
// a single option label, a set of option labels, or a label->term mapping.
// The zero value means "unanswered".
type Answer struct {
	Choice  string            `json:"-"`
	Choices []string          `json:"-"`
	Matches map[string]string `json:"-"`
}

func (a Answer) IsZero() bool {
	return a.Choice == "" && len(a.Choices) == 0 && len(a.Matches) == 0
}

// MarshalJSON emits the bare wire shape: "B", ["A","B"] or {"X":"1"}.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch {
	case a.Matches != nil:
		return json.Marshal(a.Matches)
	case a.Choices != nil:
		return json.Marshal(a.Choices)
	default:
		return json.Marshal(a.Choice)
	}
}

// UnmarshalJSON sniffs the leading token to recover the shape.
func (a *Answer) UnmarshalJSON(data []byte) error {
	*a = Answer{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '{':
		return json.Unmarshal(trimmed, &a.Matches)
	case '[':
		return json.Unmarshal(trimmed, &a.Choices)
	case '"':
		return json.Unmarshal(trimmed, &a.Choice)
	default:
		return fmt.Errorf("answer: unsupported JSON shape %q", trimmed[0])
	}
}

// MatchesKind reports whether the populated shape is the one the given
// question kind expects. The zero value matches every kind (unanswered).
func (a Answer) MatchesKind(k Kind) bool {
	if a.IsZero() {
		return true
	}
	switch k {
	case KindSingleChoice:
		return a.Choices == nil && a.Matches == nil
	case KindMultipleChoice:
		return a.Choice == "" && a.Matches == nil
	case KindMatching:
		return a.Choice == "" && a.Choices == nil
	}
	return false
}

// Question is one evaluable item. Prompt may carry inline HTML; the engine
// treats it as opaque.
type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Kind        Kind     `json:"kind"`
	Answer      Answer   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Important   bool       `json:"important,omitempty"`
	Questions   []Question `json:"questions"`

	CreatedAt int64 `json:"created_at,omitempty"`
}

// Summary is the catalog row served by list endpoints.
type Summary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Important     bool   `json:"important,omitempty"`
	QuestionCount int    `json:"question_count"`
}

func (q Quiz) Summary() Summary {
	return Summary{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Important:     q.Important,
		QuestionCount: len(q.Questions),
	}
}

// Delivery returns a copy safe to hand to a test taker: answer keys and
// explanations stripped. Explanations come back through the reveal action.
func (q Quiz) Delivery() Quiz {
	out := q
	out.Questions = make([]Question, len(q.Questions))
	for i, qq := range q.Questions {
		qq.Answer = Answer{}
		qq.Explanation = ""
		out.Questions[i] = qq
	}
	return out
}
