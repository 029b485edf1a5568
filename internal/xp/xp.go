// Package xp derives levels and badges from experience points.
package xp

import (
	"errors"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/GlebRadaev/fitquest/internal/domain"
)

const PointsPerLevel = 100

// MaxDelta caps a single accrual.
const MaxDelta = 10000

// MaxXP is the ceiling of the ledger's xp column.
const MaxXP = math.MaxInt32

var (
	ErrNegativeDelta = errors.New("xp delta must not be negative")
	ErrXPOverflow    = errors.New("xp total would exceed the ledger limit")
)

type BadgeTier struct {
	Level int
	Badge string
}

// DefaultTiers is evaluated in ascending level order.
var DefaultTiers = []BadgeTier{
	{Level: 5, Badge: "Iniciante dedicado"},
	{Level: 10, Badge: "Constante"},
	{Level: 20, Badge: "Disciplina Suprema"},
}

// LevelFor is the only source of a level value.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/PointsPerLevel + 1
}

type Engine struct {
	tiers []BadgeTier
}

func New(tiers []BadgeTier) *Engine {
	sorted := slices.Clone(tiers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })
	return &Engine{tiers: sorted}
}

func (e *Engine) Tiers() []BadgeTier {
	return slices.Clone(e.tiers)
}

// BadgesFor lists every badge unlocked at level, in tier order.
func (e *Engine) BadgesFor(level int) []string {
	var badges []string
	for _, tier := range e.tiers {
		if level < tier.Level {
			break
		}
		badges = append(badges, tier.Badge)
	}
	return badges
}

// Apply adds delta to the entry and rederives level and badges.
func (e *Engine) Apply(entry domain.LedgerEntry, delta int, now time.Time) (domain.LedgerEntry, error) {
	if delta < 0 {
		return entry, ErrNegativeDelta
	}
	if delta > MaxXP-entry.XP {
		return entry, ErrXPOverflow
	}
	entry.XP += delta
	entry = e.Recompute(entry)
	entry.UpdatedAt = now
	return entry, nil
}

// Recompute rederives level from xp. Badges already held are kept even when
// the new level no longer reaches their tier.
func (e *Engine) Recompute(entry domain.LedgerEntry) domain.LedgerEntry {
	entry.Level = LevelFor(entry.XP)
	entry.Badges = merge(entry.Badges, e.BadgesFor(entry.Level))
	return entry
}

func merge(current, earned []string) []string {
	out := make([]string, 0, len(current)+len(earned))
	seen := make(map[string]struct{}, len(current)+len(earned))
	for _, list := range [][]string{current, earned} {
		for _, badge := range list {
			if _, ok := seen[badge]; ok {
				continue
			}
			seen[badge] = struct{}{}
			out = append(out, badge)
		}
	}
	return out
}
