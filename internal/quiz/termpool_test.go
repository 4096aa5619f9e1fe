package quiz

import (
	"reflect"
	"sort"
	"testing"
)

func matchingQuiz(id string) Quiz {
	return Quiz{
		ID:    id,
		Title: "m",
		Questions: []Question{
			{Prompt: "match", Options: []string{"A", "B", "C", "D"}, Kind: KindMatching,
				Answer: Answer{Matches: map[string]string{
					"A": "alpha", "B": "beta", "C": "gamma", "D": "delta",
				}}},
		},
	}
}

func TestTermPoolStablePerQuestionInstance(t *testing.T) {
	q := matchingQuiz("stable")
	first := TermPool(q, 0)
	for i := 0; i < 20; i++ {
		if got := TermPool(q, 0); !reflect.DeepEqual(got, first) {
			t.Fatalf("order changed between reads: %v vs %v", got, first)
		}
	}
}

func TestTermPoolIsPermutationOfAnswerValues(t *testing.T) {
	q := matchingQuiz("perm")
	got := TermPool(q, 0)
	want := []string{"alpha", "beta", "delta", "gamma"}
	sorted := append([]string(nil), got...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(sorted, want) {
		t.Fatalf("pool %v is not a permutation of %v", got, want)
	}
}

func TestTermPoolNilForNonMatching(t *testing.T) {
	q := Quiz{ID: "s", Questions: []Question{
		{Prompt: "p", Options: []string{"a"}, Kind: KindSingleChoice, Answer: Answer{Choice: "a"}},
	}}
	if got := TermPool(q, 0); got != nil {
		t.Fatalf("expected nil pool, got %v", got)
	}
	if got := TermPool(q, 5); got != nil {
		t.Fatalf("expected nil pool for out-of-range index, got %v", got)
	}
}
