package draw

import "github.com/ArowuTest/giveaway-engine/internal/models"

// HighVolumeUser is a participant whose entry count crossed the audit
// threshold, with a sample of their entries for manual review.
type HighVolumeUser struct {
	Username   string
	EntryCount int
	Sample     []models.ValidEntry
}

// flagHighVolume scans the aggregates in first-appearance order.
// A threshold of zero disables the check.
func flagHighVolume(agg *models.AggregateSet, threshold, sampleSize int) []HighVolumeUser {
	if threshold <= 0 {
		return nil
	}
	var flagged []HighVolumeUser
	for _, u := range agg.Order {
		p := agg.ByUser[u]
		if p.EntryCount <= threshold {
			continue
		}
		n := sampleSize
		if n <= 0 || n > len(p.Entries) {
			n = len(p.Entries)
		}
		flagged = append(flagged, HighVolumeUser{
			Username:   u,
			EntryCount: p.EntryCount,
			Sample:     p.Entries[:n],
		})
	}
	return flagged
}

// GroupStats compares the winning cohort against everyone else.
type GroupStats struct {
	WinnerCount      int
	WinnerEntries    int
	WinnerLikes      int64
	WinnerAvgEntries float64
	WinnerAvgLikes   float64

	NonWinnerCount      int
	NonWinnerEntries    int
	NonWinnerLikes      int64
	NonWinnerAvgEntries float64
	NonWinnerAvgLikes   float64
}

// CompareGroups splits the aggregate population into winners and
// non-winners and totals each side's entries and likes.
func CompareGroups(agg *models.AggregateSet, winners models.WinnerSet) GroupStats {
	won := make(map[string]bool, len(winners))
	for _, w := range winners {
		won[w.Username] = true
	}

	var gs GroupStats
	for _, u := range agg.Order {
		p := agg.ByUser[u]
		if won[u] {
			gs.WinnerCount++
			gs.WinnerEntries += p.EntryCount
			gs.WinnerLikes += p.TotalLikes
		} else {
			gs.NonWinnerCount++
			gs.NonWinnerEntries += p.EntryCount
			gs.NonWinnerLikes += p.TotalLikes
		}
	}
	if gs.WinnerCount > 0 {
		gs.WinnerAvgEntries = float64(gs.WinnerEntries) / float64(gs.WinnerCount)
		gs.WinnerAvgLikes = float64(gs.WinnerLikes) / float64(gs.WinnerCount)
	}
	if gs.NonWinnerCount > 0 {
		gs.NonWinnerAvgEntries = float64(gs.NonWinnerEntries) / float64(gs.NonWinnerCount)
		gs.NonWinnerAvgLikes = float64(gs.NonWinnerLikes) / float64(gs.NonWinnerCount)
	}
	return gs
}
