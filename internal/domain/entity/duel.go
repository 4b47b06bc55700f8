package entity

import (
	"fmt"
	"time"
)

// DuelKey builds the durable record key "userId@guildId".
func DuelKey(userID, guildID string) string {
	return fmt.Sprintf("%s@%s", userID, guildID)
}

// DuelRecord holds one member's duel tally within a guild.
type DuelRecord struct {
	UserKey   string    `json:"user_key"`
	UserID    string    `json:"user_id"`
	GuildID   string    `json:"guild_id"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	Draws     int       `json:"draws"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDuelRecord returns an empty tally for the member.
func NewDuelRecord(userID, guildID string) *DuelRecord {
	return &DuelRecord{
		UserKey: DuelKey(userID, guildID),
		UserID:  userID,
		GuildID: guildID,
	}
}

// Total is the number of duels fought.
func (r *DuelRecord) Total() int {
	return r.Wins + r.Losses + r.Draws
}

// WinRate is wins over total duels, in percent. Zero when no duels.
func (r *DuelRecord) WinRate() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Wins) * 100 / float64(total)
}

// DuelOutcome is the result from the challenger's point of view.
type DuelOutcome string

const (
	DuelWin  DuelOutcome = "win"
	DuelLoss DuelOutcome = "loss"
	DuelDraw DuelOutcome = "draw"
)

// DuelResult describes a resolved duel and both updated tallies.
type DuelResult struct {
	ChallengerRoll int
	OpponentRoll   int
	Outcome        DuelOutcome
	Challenger     *DuelRecord
	Opponent       *DuelRecord
}
