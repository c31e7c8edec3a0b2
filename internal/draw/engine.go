// Package draw runs the full giveaway pipeline: clean, validate, aggregate,
// then either draw winners or look up pre-selected ones.
package draw

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ArowuTest/giveaway-engine/internal/cleaner"
	"github.com/ArowuTest/giveaway-engine/internal/entries"
	"github.com/ArowuTest/giveaway-engine/internal/models"
	"github.com/ArowuTest/giveaway-engine/internal/rng"
)

// ErrEmptyInput mirrors entries.ErrEmptyInput at the engine boundary.
var ErrEmptyInput = entries.ErrEmptyInput

// Config carries the audit-reporting knobs the caller supplies. The core
// rules (mention gate, weight formula) are fixed and take no configuration.
type Config struct {
	// HighEntryThreshold flags participants with more valid entries than
	// this for manual review. Zero disables the flagging.
	HighEntryThreshold int
	// HighEntrySample caps how many of a flagged user's entries are kept
	// for the audit report.
	HighEntrySample int
}

// Result is everything one run exposes to the reporting layer.
type Result struct {
	Record models.DrawRecord

	// Cleaning diagnostics.
	RowsIn            int
	DuplicatesRemoved int
	SchemaWarning     string

	InvalidCount int
	Aggregates   *models.AggregateSet

	// Random mode: winners in draw order. Lookup mode: requested usernames
	// that had valid entries, in requested order.
	Winners models.WinnerSet

	// Clamped is set when fewer participants existed than requested.
	Clamped bool
	// NoEligible is set when zero participants had valid entries; the run
	// still completes with an empty winner set.
	NoEligible bool

	// Lookup mode: requested usernames with no valid entries. Never an error.
	Excluded []string

	HighVolume []HighVolumeUser
}

// Engine is stateless across runs; each Run owns its inputs.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Run executes the pipeline over one batch of raw rows.
//
// It returns ErrEmptyInput when no rows survive normalization. Every other
// irregular condition (schema mismatch, empty eligible population, clamped
// winner count, unknown lookup usernames) is reported as a Result field.
func (e *Engine) Run(rows []models.RawRecord, mode models.DrawMode) (*Result, error) {
	cleaned := cleaner.Clean(rows)
	if cleaned.SchemaWarning != "" {
		zap.L().Warn("draw: schema mismatch", zap.String("warning", cleaned.SchemaWarning))
	}
	zap.L().Info("draw: cleaned input",
		zap.Int("rows_in", cleaned.RowsIn),
		zap.Int("duplicates_removed", cleaned.DuplicatesRemoved),
	)

	res := &Result{
		RowsIn:            cleaned.RowsIn,
		DuplicatesRemoved: cleaned.DuplicatesRemoved,
		SchemaWarning:     cleaned.SchemaWarning,
	}

	vr, err := entries.Validate(cleaned.Records)
	if err != nil {
		if errors.Is(err, entries.ErrEmptyInput) {
			return res, err
		}
		return nil, eris.Wrap(err, "draw: validate entries")
	}
	res.InvalidCount = vr.InvalidCount
	res.Aggregates = entries.Aggregate(vr.Valid)

	res.Record = models.DrawRecord{
		ID:                uuid.New(),
		DrawnAt:           time.Now(),
		TotalEntries:      len(vr.Valid),
		TotalParticipants: res.Aggregates.Participants(),
		TotalWeight:       res.Aggregates.TotalWeight(),
	}

	if res.Aggregates.Participants() == 0 {
		res.NoEligible = true
		zap.L().Warn("draw: no eligible participants")
		return res, nil
	}

	switch mode.Kind {
	case models.DrawRandom:
		if err := e.runRandom(res, mode); err != nil {
			return nil, err
		}
	case models.DrawLookup:
		e.runLookup(res, mode.Usernames)
	default:
		return nil, eris.Errorf("draw: unknown mode %d", mode.Kind)
	}

	res.HighVolume = flagHighVolume(res.Aggregates, e.cfg.HighEntryThreshold, e.cfg.HighEntrySample)
	return res, nil
}

func (e *Engine) runRandom(res *Result, mode models.DrawMode) error {
	src, err := rng.NewSource(mode.Seed)
	if err != nil {
		return eris.Wrap(err, "draw: init generator")
	}

	cands := make([]rng.Candidate, 0, res.Aggregates.Participants())
	for _, u := range res.Aggregates.Order {
		p := res.Aggregates.ByUser[u]
		cands = append(cands, rng.Candidate{Username: u, Weight: p.TotalWeight})
	}

	out, err := rng.Draw(cands, mode.WinnerCount, src)
	if err != nil {
		return eris.Wrap(err, "draw: weighted draw")
	}

	res.Clamped = out.Clamped
	res.NoEligible = out.NoEligible
	res.Record.RequestedWinners = out.Requested
	res.Record.EffectiveWinners = out.Effective
	if mode.Seed != nil {
		res.Record.Seeded = true
		res.Record.Seed = *mode.Seed
	}
	if out.Clamped {
		zap.L().Warn("draw: population smaller than requested winner count",
			zap.Int("requested", out.Requested),
			zap.Int("effective", out.Effective),
		)
	}

	for i, u := range out.Winners {
		res.Winners = append(res.Winners, winnerFor(res.Aggregates, u, i+1))
	}
	return nil
}

// runLookup bypasses the sampler: the winners were chosen elsewhere and the
// caller wants their stats. Unknown usernames are reported, not fatal.
func (e *Engine) runLookup(res *Result, usernames []string) {
	pos := 0
	for _, u := range usernames {
		if res.Aggregates.Get(u) == nil {
			res.Excluded = append(res.Excluded, u)
			continue
		}
		pos++
		res.Winners = append(res.Winners, winnerFor(res.Aggregates, u, pos))
	}
	res.Record.RequestedWinners = len(usernames)
	res.Record.EffectiveWinners = len(res.Winners)
	if len(res.Excluded) > 0 {
		zap.L().Warn("draw: requested winners without valid entries",
			zap.Strings("excluded", res.Excluded),
		)
	}
}

func winnerFor(agg *models.AggregateSet, username string, position int) models.Winner {
	p := agg.Get(username)
	return models.Winner{
		Position:    position,
		Username:    p.Username,
		ProfileURL:  p.ProfileURL,
		TotalWeight: p.TotalWeight,
		TotalLikes:  p.TotalLikes,
		EntryCount:  p.EntryCount,
	}
}
