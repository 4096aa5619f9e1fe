package quiz

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"strconv"
)

// TermPool returns the candidate terms for a matching question, shuffled in
// an order that is fixed for the lifetime of the (quiz, question) pair.
// Seeding off the quiz id keeps the order stable across state reloads so the
// presented dropdowns never re-shuffle underneath the user. Non-matching
// questions get nil.
func TermPool(q Quiz, index int) []string {
	if index < 0 || index >= len(q.Questions) {
		return nil
	}
	qq := q.Questions[index]
	if qq.Kind != KindMatching {
		return nil
	}
	terms := make([]string, 0, len(qq.Answer.Matches))
	for _, v := range qq.Answer.Matches {
		terms = append(terms, v)
	}
	sort.Strings(terms)

	rng := rand.New(rand.NewSource(termSeed(q.ID, index)))
	rng.Shuffle(len(terms), func(i, j int) {
		terms[i], terms[j] = terms[j], terms[i]
	})
	return terms
}

func termSeed(quizID string, index int) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(quizID))
	_, _ = h.Write([]byte("#" + strconv.Itoa(index)))
	return int64(h.Sum64())
}
