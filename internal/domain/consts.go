package domain

import "time"

// KST is the calendar used for every per-day cache key.
var KST = time.FixedZone("KST", 9*60*60)

// DateLayout is the format of daily cache keys (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DateKey returns the KST calendar date of t as a cache key.
func DateKey(t time.Time) string {
	return t.In(KST).Format(DateLayout)
}

// Rotation defaults used when no configuration overrides them.
const (
	DefaultRotationInterval = 90 * time.Minute
	DefaultRotationEpoch    = "2026-01-17T21:00:00+09:00"
)

// Rotation query limits exposed through Discord commands.
const (
	DefaultRotationCount = 5
	MaxRotationCount     = 10
	ScheduleCount        = 5
)

// ZodiacSign pairs the English key stored in the database with its Korean display name.
type ZodiacSign struct {
	Key  string
	Name string
}

// ZodiacSigns lists the twelve signs in zodiac order.
var ZodiacSigns = []ZodiacSign{
	{Key: "Aries", Name: "양자리"},
	{Key: "Taurus", Name: "황소자리"},
	{Key: "Gemini", Name: "쌍둥이자리"},
	{Key: "Cancer", Name: "게자리"},
	{Key: "Leo", Name: "사자자리"},
	{Key: "Virgo", Name: "처녀자리"},
	{Key: "Libra", Name: "천칭자리"},
	{Key: "Scorpio", Name: "전갈자리"},
	{Key: "Sagittarius", Name: "궁수자리"},
	{Key: "Capricorn", Name: "염소자리"},
	{Key: "Aquarius", Name: "물병자리"},
	{Key: "Pisces", Name: "물고기자리"},
}

// FindZodiacSign resolves either the English key or the Korean name.
func FindZodiacSign(value string) (ZodiacSign, bool) {
	for _, sign := range ZodiacSigns {
		if sign.Key == value || sign.Name == value {
			return sign, true
		}
	}
	return ZodiacSign{}, false
}

// Podcast voices; each one has its own persona in the script prompt.
const (
	VoiceFenrir = "Fenrir"
	VoiceCharon = "Charon"
	VoicePuck   = "Puck"
)

// PodcastVoices is the order scripts are requested in.
var PodcastVoices = []string{VoiceFenrir, VoiceCharon, VoicePuck}

// Speech output format produced by the TTS model.
const (
	SpeechSampleRate = 24000
	SpeechChannels   = 1
	SpeechBitDepth   = 16
)

// DailyJobCount is how many jobs get a recommendation each day.
const DailyJobCount = 3

// Duel rolls are uniform in [1, DuelMaxRoll].
const DuelMaxRoll = 100

// MaxDuelLeaderboard caps the duel stats listing.
const MaxDuelLeaderboard = 100
