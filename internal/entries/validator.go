// Package entries decides which cleaned records count as contest entries
// and reduces them to per-participant totals.
package entries

import (
	"errors"

	"github.com/ArowuTest/giveaway-engine/internal/models"
)

// ErrEmptyInput reports that zero records survived normalization. It is
// recoverable: callers decide whether an empty giveaway aborts the run.
var ErrEmptyInput = errors.New("entries: no records to validate")

// ValidationResult splits records into qualifying entries and a count of
// the rejects.
type ValidationResult struct {
	Valid        []models.ValidEntry
	InvalidCount int
}

// Validate applies the entry rule: a record qualifies only when all three
// mention slots are populated. Blank strings are rejected the same as
// missing columns. The rule is fixed, not configurable.
//
// Each qualifying entry gets Weight = Likes + 1, so even a zero-like entry
// holds one ticket.
func Validate(records []models.CommentRecord) (ValidationResult, error) {
	if len(records) == 0 {
		return ValidationResult{}, ErrEmptyInput
	}

	var res ValidationResult
	for _, rec := range records {
		if rec.Mention1 == "" || rec.Mention2 == "" || rec.Mention3 == "" {
			res.InvalidCount++
			continue
		}
		likes := ExtractLikes(rec.ActionType)
		res.Valid = append(res.Valid, models.ValidEntry{
			CommentRecord: rec,
			Likes:         likes,
			Weight:        likes + 1,
		})
	}
	return res, nil
}
