package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/giveaway-engine/internal/draw"
	"github.com/ArowuTest/giveaway-engine/internal/models"
)

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func TestAnnouncePrintsWinnersInDrawOrder(t *testing.T) {
	var sb strings.Builder
	r := New(&sb, false)
	res := &draw.Result{
		Winners: models.WinnerSet{
			{Position: 1, Username: "alice", ProfileURL: "https://example.com/alice"},
			{Position: 2, Username: "bob"},
		},
	}
	r.Announce(res)

	out := sb.String()
	assert.Contains(t, out, "AND THE 2 WINNERS ARE...")
	assert.Contains(t, out, "--- Winner #1 ---\nUsername: alice")
	assert.Contains(t, out, "--- Winner #2 ---\nUsername: bob")
	assert.Contains(t, out, "Profile URL not found") // bob has no profile
	assert.Less(t, strings.Index(out, "alice"), strings.Index(out, "bob"))
}

func TestAnnounceNoEligible(t *testing.T) {
	var sb strings.Builder
	New(&sb, false).Announce(&draw.Result{NoEligible: true})
	assert.Contains(t, sb.String(), "Winner selection cannot proceed.")
}

func TestWinnerDetailsListsExclusions(t *testing.T) {
	var sb strings.Builder
	r := New(&sb, false)
	r.WinnerDetails(&draw.Result{
		Winners: models.WinnerSet{
			{Position: 1, Username: "alice", EntryCount: 2, TotalLikes: 3, TotalWeight: 5},
		},
		Excluded: []string{"ghost"},
	})

	out := sb.String()
	assert.Contains(t, out, "Total Valid Entries: 2")
	assert.Contains(t, out, "Final Winning Score: 5")
	assert.Contains(t, out, "excluded: ghost")
}

func TestHighVolumeReportWritesDetailFile(t *testing.T) {
	var sb strings.Builder
	r := New(&sb, false)
	path := filepath.Join(t.TempDir(), "high.txt")

	users := []draw.HighVolumeUser{{
		Username:   "spammer",
		EntryCount: 60,
		Sample: []models.ValidEntry{{
			CommentRecord: models.CommentRecord{
				TimeElapsed: "2h", Mention1: "a", Mention2: "b", Mention3: "c",
			},
		}},
	}}
	require.NoError(t, r.HighVolumeReport(users, 50, path))

	assert.Contains(t, sb.String(), "spammer (60 entries)")

	data, err := readFile(path)
	require.NoError(t, err)
	assert.Contains(t, data, "High-Volume Entry Report (Threshold > 50 entries)")
	assert.Contains(t, data, `Comment: "[No Text]"`)
}

func TestSaveWinnerSummaryGatedByCapability(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	winners := models.WinnerSet{{Position: 1, Username: "alice"}}

	var sb strings.Builder
	require.NoError(t, New(&sb, false).SaveWinnerSummary(path, winners))
	_, err := readFile(path)
	assert.Error(t, err, "export disabled: no file expected")

	require.NoError(t, New(&sb, true).SaveWinnerSummary(path, winners))
	data, err := readFile(path)
	require.NoError(t, err)
	assert.Contains(t, data, "alice")
}
