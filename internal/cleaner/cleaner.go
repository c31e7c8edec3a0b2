// Package cleaner deduplicates raw comment exports and maps the surviving
// rows onto the known column schema.
package cleaner

import (
	"fmt"
	"strings"

	"github.com/ArowuTest/giveaway-engine/internal/models"
)

// Result is one cleaning pass. SchemaWarning is non-empty when the export's
// column count differed from the known schema; the mapping is truncated (or
// excess columns dropped) and the pass continues.
type Result struct {
	Records           []models.CommentRecord
	RowsIn            int
	DuplicatesRemoved int
	SchemaWarning     string
}

// Clean removes exact duplicate rows and maps the survivors onto named
// fields. A duplicate is a row where every column is byte-identical to an
// earlier row; the first occurrence is kept and relative order preserved.
// Legitimate repeat entries from the same user differ in at least one
// column (timestamp, comment text) and survive.
func Clean(rows []models.RawRecord) Result {
	res := Result{RowsIn: len(rows)}
	if len(rows) == 0 {
		return res
	}

	if n := len(rows[0]); n != models.NumColumns {
		res.SchemaWarning = fmt.Sprintf(
			"column count mismatch: export has %d columns, schema names %d; mapping truncated",
			n, models.NumColumns,
		)
	}

	seen := make(map[string]struct{}, len(rows))
	res.Records = make([]models.CommentRecord, 0, len(rows))
	for _, row := range rows {
		k := dedupKey(row)
		if _, dup := seen[k]; dup {
			res.DuplicatesRemoved++
			continue
		}
		seen[k] = struct{}{}
		res.Records = append(res.Records, mapRow(row))
	}
	return res
}

// dedupKey flattens a row into a map key. The unit separator never occurs
// in exported text, so distinct rows cannot collide.
func dedupKey(row models.RawRecord) string {
	return strings.Join(row, "\x1f")
}

func mapRow(row models.RawRecord) models.CommentRecord {
	if len(row) > models.NumColumns {
		row = row[:models.NumColumns]
	}
	return models.CommentRecord{
		ProfileURL:  row.Field(models.ColProfileURL),
		Username:    row.Field(models.ColUsername),
		Mention1:    row.Field(models.ColMention1Username),
		Mention2:    row.Field(models.ColMention2Username),
		Mention3:    row.Field(models.ColMention3Username),
		CommentText: row.Field(models.ColCommentText),
		TimeElapsed: row.Field(models.ColTimeElapsed),
		ActionType:  row.Field(models.ColActionType),
		Raw:         row,
	}
}
