package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/osint-atlas/atlas/internal/model"
)

// Submission rejection reasons. The messages are user-facing; the form stays
// open for correction on any of them.
var (
	ErrNotSignedIn     = errors.New("You must be signed in to review")
	ErrNoTool          = errors.New("No tool selected for review")
	ErrNoRating        = errors.New("Please select a rating")
	ErrCommentTooShort = errors.New("Please enter a comment (minimum 20 characters)")
	ErrCommentTooLong  = errors.New("Comment must be less than 500 characters")
	ErrAlreadyReviewed = errors.New("You have already reviewed this tool")
	ErrSaveFailed      = errors.New("Failed to save review. Please try again.")
)

// Saver persists the full review collection. A false return means the store
// could not be updated; the in-memory collection must then be left unchanged.
type Saver interface {
	SaveReviews(reviews []model.Review) bool
}

// Submitter runs the review submission flow: validate, simulate backend
// latency, append, persist. Persistence failure rolls the append back so the
// in-memory and persisted collections never diverge.
type Submitter struct {
	saver Saver
	delay time.Duration
}

// NewSubmitter creates a Submitter. delay is the simulated backend latency
// applied after validation; pass 0 in tests.
func NewSubmitter(saver Saver, delay time.Duration) *Submitter {
	return &Submitter{saver: saver, delay: delay}
}

// SubmitParams holds one submission attempt.
type SubmitParams struct {
	User     *model.User
	Tool     *model.Tool
	Rating   int
	Comment  string
	Existing []model.Review
}

// Submit validates and persists a new review. On success it returns the
// updated collection and the created review. On any error the returned
// collection is Existing, untouched.
func (s *Submitter) Submit(ctx context.Context, params SubmitParams) ([]model.Review, model.Review, error) {
	var zero model.Review

	if params.User == nil {
		return params.Existing, zero, ErrNotSignedIn
	}
	if params.Tool == nil {
		return params.Existing, zero, ErrNoTool
	}
	if params.Rating == 0 {
		return params.Existing, zero, ErrNoRating
	}
	if params.Rating < MinRating || params.Rating > MaxRating {
		return params.Existing, zero, ErrNoRating
	}

	trimmed := strings.TrimSpace(params.Comment)
	if len([]rune(trimmed)) < MinCommentLen {
		return params.Existing, zero, ErrCommentTooShort
	}
	if len([]rune(trimmed)) > MaxCommentLen {
		return params.Existing, zero, ErrCommentTooLong
	}

	for _, r := range params.Existing {
		if r.ToolID == params.Tool.ID && r.UserID == params.User.ID {
			return params.Existing, zero, ErrAlreadyReviewed
		}
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return params.Existing, zero, ctx.Err()
		}
	}

	newReview := model.NewReview(model.NewReviewParams{
		ToolID:    params.Tool.ID,
		UserID:    params.User.ID,
		UserEmail: params.User.Email,
		Rating:    params.Rating,
		Comment:   Sanitize(trimmed),
	})

	updated := make([]model.Review, 0, len(params.Existing)+1)
	updated = append(updated, params.Existing...)
	updated = append(updated, newReview)

	if !s.saver.SaveReviews(updated) {
		return params.Existing, zero, ErrSaveFailed
	}

	return updated, newReview, nil
}
