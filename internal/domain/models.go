package domain

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID      string    `db:"user_id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	AvatarURL   string    `db:"avatar_url"`
	CreatedAt   time.Time `db:"created_at"`
}

// LedgerEntry is the per-user XP record. Level is always xp/100 + 1.
type LedgerEntry struct {
	UserID    string    `db:"user_id"`
	XP        int       `db:"xp"`
	Level     int       `db:"level"`
	Badges    []string  `db:"badges"`
	UpdatedAt time.Time `db:"updated_at"`
}

type XPSource string

const (
	XPSourceMicroGoal XPSource = "micro_goal"
	XPSourceChallenge XPSource = "challenge"
	XPSourceAdmin     XPSource = "admin"
)

type XPEvent struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Delta     int       `db:"delta"`
	Source    XPSource  `db:"source"`
	SourceID  string    `db:"source_id"`
	CreatedAt time.Time `db:"created_at"`
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

type Goal struct {
	ID          uuid.UUID  `db:"id"`
	UserID      string     `db:"user_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Category    string     `db:"category"`
	Difficulty  string     `db:"difficulty"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	CreatedAt   time.Time  `db:"created_at"`
}

const (
	MinWeek = 1
	MaxWeek = 52
)

type MicroGoal struct {
	ID          uuid.UUID `db:"id"`
	GoalID      uuid.UUID `db:"goal_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Week        int       `db:"week"`
	Done        bool      `db:"done"`
	Rewarded    bool      `db:"rewarded"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// OwnedMicroGoal is a micro-goal together with the user owning its goal.
type OwnedMicroGoal struct {
	MicroGoal
	OwnerID string `db:"user_id"`
}

type Progress struct {
	Completed int
	Total     int
	Percent   float64
}

func NewProgress(completed, total int) Progress {
	p := Progress{Completed: completed, Total: total}
	if total > 0 {
		p.Percent = float64(completed) / float64(total)
	}
	return p
}

// Done reports whether there is at least one item and all of them are complete.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed == p.Total
}

type GoalSummary struct {
	Goal
	Progress Progress
}

func (g GoalSummary) Status() string {
	if g.Progress.Done() {
		return GoalStatusCompleted
	}
	return GoalStatusActive
}

type GoalDetails struct {
	Goal       Goal
	MicroGoals []MicroGoal
	Progress   Progress
}

type ToggleResult struct {
	MicroGoal MicroGoal
	XPAwarded int
	Ledger    *LedgerEntry
}

const DaysPerWeek = 7

type WeeklyChallenge struct {
	ID          uuid.UUID         `db:"id"`
	UserID      string            `db:"user_id"`
	Week        string            `db:"week"`
	Title       string            `db:"title"`
	Description string            `db:"description"`
	Progress    [DaysPerWeek]bool `db:"progress"`
	ClaimedAt   *time.Time        `db:"claimed_at"`
	CreatedAt   time.Time         `db:"created_at"`
}

func (c WeeklyChallenge) CompletedDays() int {
	n := 0
	for _, done := range c.Progress {
		if done {
			n++
		}
	}
	return n
}

func (c WeeklyChallenge) WeeklyProgress() Progress {
	return NewProgress(c.CompletedDays(), DaysPerWeek)
}

type ClaimResult struct {
	Challenge WeeklyChallenge
	XPAwarded int
	Ledger    *LedgerEntry
}

type RankingRow struct {
	UserID      string `db:"user_id"`
	DisplayName string `db:"display_name"`
	AvatarURL   string `db:"avatar_url"`
	WeeklyXP    int    `db:"weekly_xp"`
	Rank        int
}

type RankingView struct {
	Week string
	Top  []RankingRow
	Me   *RankingRow
}

type Dashboard struct {
	Profile   *Profile
	Ledger    *LedgerEntry
	Rank      *RankingRow
	Goals     []GoalSummary
	Challenge *WeeklyChallenge
}

type AuditEvent struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Action    string    `db:"action"`
	SubjectID string    `db:"subject_id"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

type AuditFilter struct {
	UserID string
	Limit  int
}
