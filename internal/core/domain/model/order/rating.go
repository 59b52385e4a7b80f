package order

import "marketplace/internal/pkg/errs"

const (
	// MinRatingScore is the lowest score a buyer may give.
	MinRatingScore = 1
	// MaxRatingScore is the highest score a buyer may give.
	MaxRatingScore = 5
)

// Rating is the buyer's one-time evaluation of a completed order.
type Rating struct {
	score  int
	review string
}

// newRating creates a rating after the aggregate has verified the order is
// completed, not yet rated, and the actor is the buyer.
func newRating(score int, review string) (Rating, error) {
	if score < MinRatingScore || score > MaxRatingScore {
		return Rating{}, errs.NewValueIsOutOfRangeError("score", score, MinRatingScore, MaxRatingScore)
	}

	return Rating{score: score, review: review}, nil
}

// RestoreRating reconstructs a rating from persistent storage.
func RestoreRating(score int, review string) (Rating, error) {
	return newRating(score, review)
}

// Score returns the rating score in [1,5].
func (r Rating) Score() int {
	return r.score
}

// Review returns the optional review text.
func (r Rating) Review() string {
	return r.review
}
