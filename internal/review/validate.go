package review

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/osint-atlas/atlas/internal/model"
)

// Rating and comment bounds for a submitted review.
const (
	MinRating     = 1
	MaxRating     = 5
	MinCommentLen = 20
	MaxCommentLen = 500
)

// Sanitize trims surrounding whitespace, strips the literal characters
// '<' and '>', and truncates to MaxCommentLen characters. Idempotent.
func Sanitize(text string) string {
	s := strings.TrimSpace(text)
	s = strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, s)

	runes := []rune(s)
	if len(runes) > MaxCommentLen {
		// Trim again: truncation may leave trailing whitespace.
		s = strings.TrimSpace(string(runes[:MaxCommentLen]))
	}
	return s
}

// IsValid reports whether a raw persisted record is a well-formed review:
// every field present with the correct type, rating within [1,5] and comment
// at least MinCommentLen characters. Used when re-hydrating persisted
// reviews to reject corrupted or tampered records.
func IsValid(raw json.RawMessage) bool {
	var rec struct {
		ID        *string `json:"id"`
		ToolID    *int    `json:"toolId"`
		UserID    *string `json:"userId"`
		UserEmail *string `json:"userEmail"`
		Rating    *int    `json:"rating"`
		Comment   *string `json:"comment"`
		Date      *string `json:"date"`
		Helpful   *int    `json:"helpful"`
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&rec); err != nil {
		// Wrong field type (e.g. fractional rating, numeric comment).
		return false
	}

	if rec.ID == nil || rec.ToolID == nil || rec.UserID == nil ||
		rec.UserEmail == nil || rec.Rating == nil || rec.Comment == nil ||
		rec.Date == nil || rec.Helpful == nil {
		return false
	}
	if *rec.Rating < MinRating || *rec.Rating > MaxRating {
		return false
	}
	if len([]rune(*rec.Comment)) < MinCommentLen {
		return false
	}
	return true
}

// Parse decodes a persisted review list, silently dropping records that fail
// IsValid. It is total: malformed input of any kind yields an empty list,
// never an error.
func Parse(data []byte) []model.Review {
	if len(data) == 0 {
		return []model.Review{}
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return []model.Review{}
	}

	reviews := make([]model.Review, 0, len(raws))
	for _, raw := range raws {
		if !IsValid(raw) {
			continue
		}
		var r model.Review
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		reviews = append(reviews, r)
	}
	return reviews
}
