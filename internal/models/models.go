package models

import (
	"time"

	"github.com/google/uuid"
)

// Column indices of an exported comment row. Exports always carry the same
// 14 columns in this order; shorter rows are tolerated (missing columns read
// as empty) and extra trailing columns are dropped.
const (
	ColProfileURL = iota
	ColProfilePictureURL
	ColUsername
	ColPostCommentURL
	ColTimeElapsed
	ColCommentText
	ColMention1Username
	ColMention1URL
	ColMention2Username
	ColMention2URL
	ColMention3Username
	ColMention3URL
	ColActionType
	ColExtraEmpty

	NumColumns = 14
)

// ColumnNames are the human-readable labels applied to a raw export,
// in column order.
var ColumnNames = []string{
	"profile_url", "profile_picture_url", "username", "post_comment_url",
	"time_elapsed", "comment_text", "mentioned_user_1_username",
	"mentioned_user_1_url", "mentioned_user_2_username", "mentioned_user_2_url",
	"mentioned_user_3_username", "mentioned_user_3_url", "action_type",
	"extra_empty_column",
}

// RawRecord is one ingested row: an ordered tuple of opaque text fields.
type RawRecord []string

// Field returns the i-th column, or "" when the row is too short.
func (r RawRecord) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// CommentRecord is a deduplicated row mapped onto the known schema.
// Raw keeps the surviving original columns so the cleaned export can be
// written back out unchanged.
type CommentRecord struct {
	ProfileURL  string
	Username    string
	Mention1    string
	Mention2    string
	Mention3    string
	CommentText string
	TimeElapsed string
	ActionType  string // free text, may embed a like count

	Raw RawRecord
}

// ValidEntry is a CommentRecord that qualified as a contest entry
// (all three mention slots populated).
type ValidEntry struct {
	CommentRecord

	Likes  int64 // first digit run in ActionType, 0 if none
	Weight int64 // Likes + 1, never below 1
}

// ParticipantStats is the per-username reduction over that user's valid
// entries. ProfileURL comes from the user's first entry and is never
// overwritten; scraped rows for the same account occasionally disagree.
type ParticipantStats struct {
	Username    string
	ProfileURL  string
	TotalWeight int64
	TotalLikes  int64
	EntryCount  int

	// Entries in original order, kept for audit reporting.
	Entries []ValidEntry
}

// AggregateSet holds every participant keyed by username. Order records
// first-appearance order so seeded draws iterate deterministically.
type AggregateSet struct {
	ByUser map[string]*ParticipantStats
	Order  []string
}

// Get returns the stats for username, or nil when the user has no
// valid entries.
func (a *AggregateSet) Get(username string) *ParticipantStats {
	if a == nil {
		return nil
	}
	return a.ByUser[username]
}

// Participants returns the number of distinct users with valid entries.
func (a *AggregateSet) Participants() int {
	if a == nil {
		return 0
	}
	return len(a.Order)
}

// TotalWeight sums every participant's weight.
func (a *AggregateSet) TotalWeight() int64 {
	if a == nil {
		return 0
	}
	var total int64
	for _, u := range a.Order {
		total += a.ByUser[u].TotalWeight
	}
	return total
}

// Winner is one drawn (or looked-up) participant. Position is 1-based
// draw order: position 1 is "Winner #1" downstream.
type Winner struct {
	Position    int
	Username    string
	ProfileURL  string
	TotalWeight int64
	TotalLikes  int64
	EntryCount  int
}

// WinnerSet is the ordered selection result. No username appears twice.
type WinnerSet []Winner

// Usernames returns the winners' usernames in draw order.
func (ws WinnerSet) Usernames() []string {
	names := make([]string, len(ws))
	for i, w := range ws {
		names[i] = w.Username
	}
	return names
}

// DrawModeKind tags the two ways a run can produce winners.
type DrawModeKind int

const (
	// DrawRandom draws winners by weighted sampling without replacement.
	DrawRandom DrawModeKind = iota
	// DrawLookup reports on externally pre-selected winners instead of
	// drawing; the sampler is bypassed.
	DrawLookup
)

// DrawMode selects and parameterizes a run. Use RandomDraw or LookupDraw.
type DrawMode struct {
	Kind DrawModeKind

	// Random mode.
	WinnerCount int
	Seed        *int64 // nil means entropy-derived

	// Lookup mode.
	Usernames []string
}

// RandomDraw requests count winners. A non-nil seed makes the draw
// reproducible for audits.
func RandomDraw(count int, seed *int64) DrawMode {
	return DrawMode{Kind: DrawRandom, WinnerCount: count, Seed: seed}
}

// LookupDraw requests stats for already-chosen winners.
func LookupDraw(usernames []string) DrawMode {
	return DrawMode{Kind: DrawLookup, Usernames: usernames}
}

// DrawRecord is the audit row for one run.
type DrawRecord struct {
	ID                uuid.UUID
	DrawnAt           time.Time
	RequestedWinners  int
	EffectiveWinners  int
	Seeded            bool
	Seed              int64
	TotalEntries      int
	TotalParticipants int
	TotalWeight       int64
}
