package question

import "math/rand"

// ShuffleDeck returns a copy of deck with its questions shuffled. Option
// order is kept. Order records where each question sits in the source document.
func ShuffleDeck(deck Deck, r *rand.Rand) Deck {
	source := deck.SourceQuestions()
	order := permutation(len(source), r)
	deck.Questions = reorder(source, order)
	deck.Order = order
	return deck
}

// permutation is a Fisher-Yates shuffle of 0..n-1.
func permutation(n int, r *rand.Rand) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

func reorder(questions []Question, order []int) []Question {
	out := make([]Question, len(order))
	for i, src := range order {
		out[i] = questions[src]
	}
	return out
}
