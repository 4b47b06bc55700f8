package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/ccradio/rotation-bot/internal/rotation"
)

var weekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// Clock renders t as HH:MM in KST.
func Clock(t time.Time) string {
	return t.In(domain.KST).Format("15:04")
}

// DateTime renders t as M/D(요일) HH:MM in KST.
func DateTime(t time.Time) string {
	k := t.In(domain.KST)
	return fmt.Sprintf("%d/%d(%s) %s", k.Month(), k.Day(), weekdays[k.Weekday()], k.Format("15:04"))
}

func Mention(userID string) string {
	return "<@" + userID + ">"
}

func FormatNow(s rotation.Snapshot) string {
	return strings.Join([]string{
		"**[현재 맵]** " + s.Current.Map.Label(),
		"🕒 종료 시간: " + Clock(s.Current.End),
		"",
		"**[다음 맵]** " + s.Next.Map.Label(),
		"🕒 시작 시간: " + Clock(s.Next.Start),
	}, "\n")
}

// FormatAnnouncement is posted when a new window opens.
func FormatAnnouncement(s rotation.Snapshot) string {
	return "🔔 **맵이 바뀌었습니다!**\n" + FormatNow(s)
}

func FormatSchedule(windows []rotation.Window) string {
	lines := make([]string, 0, len(windows)+1)
	lines = append(lines, fmt.Sprintf("**📅 향후 %d개 로테이션 일정**", len(windows)))
	for i, w := range windows {
		lines = append(lines, fmt.Sprintf("%d. [%s] **%s**", i+1, Clock(w.Start), w.Map.Label()))
	}
	return strings.Join(lines, "\n")
}

func FormatOccurrences(name string, occ []rotation.Occurrence) string {
	lines := make([]string, 0, len(occ)+1)
	lines = append(lines, fmt.Sprintf("**🗺️ '%s' 향후 일정**", name))
	for _, o := range occ {
		status := ""
		if o.IsCurrent {
			status = " **(현재 진행 중! 🔥)**"
		}
		lines = append(lines, fmt.Sprintf("- %s ~ %s%s", DateTime(o.Start), Clock(o.End), status))
	}
	return strings.Join(lines, "\n")
}

func FormatHoroscope(sign domain.ZodiacSign, h *entity.Horoscope) string {
	text, mapName, job := h.Parts()
	lines := []string{
		fmt.Sprintf("**🔮 %s 오늘의 운세** (%s)", sign.Name, h.Date),
		text,
	}
	if mapName != "" || job != "" {
		lines = append(lines, "")
	}
	if mapName != "" {
		lines = append(lines, "🍀 행운의 맵: "+mapName)
	}
	if job != "" {
		lines = append(lines, "⚔️ 추천 직업: "+job)
	}
	return strings.Join(lines, "\n")
}

func FormatJobs(recs []*entity.JobRecommendation) string {
	if len(recs) == 0 {
		return "오늘의 추천 직업이 아직 없습니다."
	}
	lines := []string{fmt.Sprintf("**⚔️ 오늘의 추천 직업** (%s)", recs[0].Date)}
	for _, r := range recs {
		lines = append(lines, fmt.Sprintf("• **%s**: %s", r.JobName, r.Comment))
	}
	return strings.Join(lines, "\n")
}

func FormatPodcast(p *entity.Podcast, url string) string {
	return fmt.Sprintf("**📻 크리스탈라인 라디오** (%s, %s)\n%s", p.Date, p.Voice, url)
}

func FormatDuel(r *entity.DuelResult) string {
	c, o := Mention(r.Challenger.UserID), Mention(r.Opponent.UserID)
	var verdict string
	switch r.Outcome {
	case entity.DuelWin:
		verdict = fmt.Sprintf("🏆 %s 승리!", c)
	case entity.DuelLoss:
		verdict = fmt.Sprintf("🏆 %s 승리!", o)
	default:
		verdict = "🤝 무승부!"
	}
	return strings.Join([]string{
		fmt.Sprintf("**⚔️ 결투: %s vs %s**", c, o),
		fmt.Sprintf("🎲 %s: %d", c, r.ChallengerRoll),
		fmt.Sprintf("🎲 %s: %d", o, r.OpponentRoll),
		verdict,
	}, "\n")
}

func FormatStats(rec *entity.DuelRecord) string {
	return fmt.Sprintf("**📊 %s 결투 전적**\n%d승 %d패 %d무 (승률 %.1f%%)",
		Mention(rec.UserID), rec.Wins, rec.Losses, rec.Draws, rec.WinRate())
}

func FormatTip(t *entity.Tip) string {
	return fmt.Sprintf("**💡 [%s] %s**\n%s", t.Category, t.Keyword, t.Content)
}
