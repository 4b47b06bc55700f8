package discord

import (
	"testing"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/ccradio/rotation-bot/internal/rotation"
	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, 1, 17, 21, 0, 0, 0, domain.KST)

func TestClockAndDateTime(t *testing.T) {
	utc := time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "21:00", Clock(utc))
	assert.Equal(t, "1/17(토) 21:00", DateTime(utc))
	assert.Equal(t, "1/18(일) 00:30", DateTime(epoch.Add(210*time.Minute)))
}

func TestFormatNow(t *testing.T) {
	s := rotation.Snapshot{
		Current: rotation.Current{Map: rotation.Map{Name: "A", Emote: "🅰️"}, End: epoch.Add(90 * time.Minute)},
		Next:    rotation.Next{Map: rotation.Map{Name: "B"}, Start: epoch.Add(90 * time.Minute)},
	}

	want := "**[현재 맵]** 🅰️ A\n🕒 종료 시간: 22:30\n\n**[다음 맵]** B\n🕒 시작 시간: 22:30"
	assert.Equal(t, want, FormatNow(s))
	assert.Contains(t, FormatAnnouncement(s), want)
}

func TestFormatSchedule(t *testing.T) {
	got := FormatSchedule([]rotation.Window{
		{Map: rotation.Map{Name: "A"}, Start: epoch},
		{Map: rotation.Map{Name: "B"}, Start: epoch.Add(90 * time.Minute)},
	})

	assert.Equal(t, "**📅 향후 2개 로테이션 일정**\n1. [21:00] **A**\n2. [22:30] **B**", got)
}

func TestFormatOccurrences(t *testing.T) {
	got := FormatOccurrences("B", []rotation.Occurrence{
		{Start: epoch, End: epoch.Add(90 * time.Minute), IsCurrent: true},
		{Start: epoch.Add(270 * time.Minute), End: epoch.Add(360 * time.Minute)},
	})

	assert.Equal(t, "**🗺️ 'B' 향후 일정**\n"+
		"- 1/17(토) 21:00 ~ 22:30 **(현재 진행 중! 🔥)**\n"+
		"- 1/18(일) 01:30 ~ 03:00", got)
}

func TestFormatHoroscope(t *testing.T) {
	sign := domain.ZodiacSign{Key: "Aries", Name: "양자리"}

	full := FormatHoroscope(sign, &entity.Horoscope{Date: "2026-01-18", Content: "좋은 날|팔라이스트라|전사"})
	assert.Contains(t, full, "양자리 오늘의 운세")
	assert.Contains(t, full, "행운의 맵: 팔라이스트라")
	assert.Contains(t, full, "추천 직업: 전사")

	plain := FormatHoroscope(sign, &entity.Horoscope{Date: "2026-01-18", Content: "그냥 운세"})
	assert.NotContains(t, plain, "행운의 맵")
}

func TestFormatDuel(t *testing.T) {
	base := entity.DuelResult{
		ChallengerRoll: 70,
		OpponentRoll:   30,
		Challenger:     entity.NewDuelRecord("U1", "G"),
		Opponent:       entity.NewDuelRecord("U2", "G"),
	}

	win := base
	win.Outcome = entity.DuelWin
	assert.Contains(t, FormatDuel(&win), "🏆 <@U1> 승리!")

	loss := base
	loss.Outcome = entity.DuelLoss
	assert.Contains(t, FormatDuel(&loss), "🏆 <@U2> 승리!")

	draw := base
	draw.Outcome = entity.DuelDraw
	assert.Contains(t, FormatDuel(&draw), "무승부")
}

func TestFormatStats(t *testing.T) {
	rec := entity.NewDuelRecord("U1", "G")
	rec.Wins, rec.Losses, rec.Draws = 3, 1, 0

	assert.Equal(t, "**📊 <@U1> 결투 전적**\n3승 1패 0무 (승률 75.0%)", FormatStats(rec))
}
