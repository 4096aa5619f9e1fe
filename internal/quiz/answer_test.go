package quiz

import (
	"encoding/json"
	"reflect"
	"testing"
)

// Answers ride the wire in their bare shape (string, array or object); the
// decoder has to sniff which one it got.
func TestAnswerJSONShapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Answer
	}{
		{"single", `"Paris"`, Answer{Choice: "Paris"}},
		{"multi", `["a","b"]`, Answer{Choices: []string{"a", "b"}}},
		{"matching", `{"X":"1"}`, Answer{Matches: map[string]string{"X": "1"}}},
		{"null", `null`, Answer{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Answer
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
			out, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var again Answer
			if err := json.Unmarshal(out, &again); err != nil {
				t.Fatalf("re-unmarshal: %v", err)
			}
			if !reflect.DeepEqual(again, got) {
				t.Fatalf("round trip changed answer: %+v vs %+v", again, got)
			}
		})
	}
}

func TestAnswerJSONRejectsNumbers(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`42`), &a); err == nil {
		t.Fatal("expected error for numeric answer")
	}
}

func TestAnswerMatchesKind(t *testing.T) {
	cases := []struct {
		name string
		a    Answer
		kind Kind
		want bool
	}{
		{"zero matches anything", Answer{}, KindMatching, true},
		{"choice vs single", Answer{Choice: "a"}, KindSingleChoice, true},
		{"choice vs matching", Answer{Choice: "a"}, KindMatching, false},
		{"choices vs multi", Answer{Choices: []string{"a"}}, KindMultipleChoice, true},
		{"choices vs single", Answer{Choices: []string{"a"}}, KindSingleChoice, false},
		{"matches vs matching", Answer{Matches: map[string]string{"X": "1"}}, KindMatching, true},
		{"matches vs multi", Answer{Matches: map[string]string{"X": "1"}}, KindMultipleChoice, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.MatchesKind(tc.kind); got != tc.want {
				t.Fatalf("MatchesKind=%v want %v", got, tc.want)
			}
		})
	}
}
