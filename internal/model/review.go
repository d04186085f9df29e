package model

import "time"

// Review is a user-authored rating and comment for one tool. Reviews are
// immutable once created; there is no edit or delete path.
type Review struct {
	ID        string `json:"id"`
	ToolID    int    `json:"toolId"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
	Helpful   int    `json:"helpful"`
}

// NewReviewParams holds parameters for creating a new Review.
type NewReviewParams struct {
	ToolID    int
	UserID    string
	UserEmail string
	Rating    int
	Comment   string
}

// NewReview creates a Review with a generated ID and the current time.
func NewReview(params NewReviewParams) Review {
	return Review{
		ID:        generateUUID(),
		ToolID:    params.ToolID,
		UserID:    params.UserID,
		UserEmail: params.UserEmail,
		Rating:    params.Rating,
		Comment:   params.Comment,
		Date:      time.Now().UTC().Format(time.RFC3339),
		Helpful:   0,
	}
}

// Time parses the review's creation timestamp. Zero time on parse failure.
func (r Review) Time() time.Time {
	t, _ := time.Parse(time.RFC3339, r.Date)
	return t
}
