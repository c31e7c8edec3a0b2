package entries

import "github.com/ArowuTest/giveaway-engine/internal/models"

// Aggregate groups valid entries by username in a single pass.
//
// Keys keep first-appearance order so downstream tie-breaks and seeded
// draws are deterministic. The profile URL is taken from the user's first
// entry and never overwritten by later rows.
func Aggregate(valid []models.ValidEntry) *models.AggregateSet {
	agg := &models.AggregateSet{
		ByUser: make(map[string]*models.ParticipantStats),
	}
	for _, e := range valid {
		p, ok := agg.ByUser[e.Username]
		if !ok {
			p = &models.ParticipantStats{
				Username:   e.Username,
				ProfileURL: e.ProfileURL,
			}
			agg.ByUser[e.Username] = p
			agg.Order = append(agg.Order, e.Username)
		}
		p.TotalWeight += e.Weight
		p.TotalLikes += e.Likes
		p.EntryCount++
		p.Entries = append(p.Entries, e)
	}
	return agg
}
