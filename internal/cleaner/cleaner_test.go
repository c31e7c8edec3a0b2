package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/giveaway-engine/internal/models"
)

func row(username, m1, m2, m3, comment, elapsed, action string) models.RawRecord {
	r := make(models.RawRecord, models.NumColumns)
	r[models.ColProfileURL] = "https://example.com/" + username
	r[models.ColUsername] = username
	r[models.ColMention1Username] = m1
	r[models.ColMention2Username] = m2
	r[models.ColMention3Username] = m3
	r[models.ColCommentText] = comment
	r[models.ColTimeElapsed] = elapsed
	r[models.ColActionType] = action
	return r
}

func TestCleanRemovesExactDuplicatesKeepingFirst(t *testing.T) {
	dup := row("alice", "a", "b", "c", "pick me", "2h", "Liked by 3 people")
	rows := []models.RawRecord{
		row("bob", "x", "y", "z", "hi", "1h", ""),
		dup,
		row("carol", "p", "q", "r", "yo", "3h", "Liked by 1 person"),
		append(models.RawRecord{}, dup...), // byte-identical copy
		row("alice", "a", "b", "c", "pick me", "4h", "Liked by 3 people"), // differs in one column
	}

	res := Clean(rows)
	require.Len(t, res.Records, 4)
	assert.Equal(t, 5, res.RowsIn)
	assert.Equal(t, 1, res.DuplicatesRemoved)
	assert.Empty(t, res.SchemaWarning)

	// First occurrence survives in its original position.
	assert.Equal(t, "bob", res.Records[0].Username)
	assert.Equal(t, "alice", res.Records[1].Username)
	assert.Equal(t, "carol", res.Records[2].Username)
	assert.Equal(t, "4h", res.Records[3].TimeElapsed)
}

func TestCleanIsIdempotent(t *testing.T) {
	rows := []models.RawRecord{
		row("a", "1", "2", "3", "", "1h", ""),
		row("a", "1", "2", "3", "", "1h", ""),
		row("b", "1", "2", "3", "", "2h", ""),
	}

	first := Clean(rows)
	require.Equal(t, 1, first.DuplicatesRemoved)

	again := make([]models.RawRecord, len(first.Records))
	for i, rec := range first.Records {
		again[i] = rec.Raw
	}
	second := Clean(again)
	assert.Zero(t, second.DuplicatesRemoved)
	assert.Equal(t, first.Records, second.Records)
}

func TestCleanShortRowsTruncateMappingWithWarning(t *testing.T) {
	// Only the first 7 columns present: mention 2/3 fall off the end.
	short := models.RawRecord{
		"https://example.com/a", "", "alice", "", "2h", "hello", "friend1",
	}
	res := Clean([]models.RawRecord{short})
	require.Len(t, res.Records, 1)
	assert.NotEmpty(t, res.SchemaWarning)

	rec := res.Records[0]
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, "friend1", rec.Mention1)
	assert.Empty(t, rec.Mention2)
	assert.Empty(t, rec.Mention3)
	assert.Empty(t, rec.ActionType)
}

func TestCleanExcessColumnsDropped(t *testing.T) {
	wide := append(row("alice", "a", "b", "c", "", "1h", ""), "extra1", "extra2")
	res := Clean([]models.RawRecord{wide})
	require.Len(t, res.Records, 1)
	assert.NotEmpty(t, res.SchemaWarning)
	assert.Len(t, res.Records[0].Raw, models.NumColumns)
	assert.Equal(t, "alice", res.Records[0].Username)
}

func TestCleanEmptyInput(t *testing.T) {
	res := Clean(nil)
	assert.Zero(t, res.RowsIn)
	assert.Zero(t, res.DuplicatesRemoved)
	assert.Empty(t, res.Records)
}
