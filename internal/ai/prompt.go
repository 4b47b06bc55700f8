package ai

import (
	"bytes"
	"fmt"
	"text/template"
)

// SignJob pairs a zodiac key with the job assigned to it for the day.
type SignJob struct {
	Sign string
	Job  string
}

// HoroscopeInput feeds the daily horoscope prompt.
type HoroscopeInput struct {
	Date        string
	Maps        []string
	Assignments []SignJob
}

// JobInput feeds the daily job comment prompt.
type JobInput struct {
	Date string
	Jobs []string
}

// VoiceProfile is the persona a podcast voice performs.
type VoiceProfile struct {
	Voice         string
	Role          string
	Scene         string
	DirectorNotes string
}

// PodcastInput feeds the podcast script prompt.
type PodcastInput struct {
	Date     string
	Maps     []string
	Jobs     []string
	Profiles []VoiceProfile
}

// VoiceProfiles is keyed by voice name.
var VoiceProfiles = map[string]VoiceProfile{
	"Fenrir": {
		Voice: "Fenrir",
		Role:  "The Energetic Shoutcaster",
		Scene: "A high-octane e-sports commentary booth. Screens blazing, crowd roaring in the distance.",
		DirectorNotes: "Style: Explosive, hype-man energy.\n" +
			"Pacing: Fast, urgent, punchy.\n" +
			"Dynamics: Loud projection. Elongates vowels on excitement.",
	},
	"Charon": {
		Voice: "Charon",
		Role:  "The Midnight News Anchor",
		Scene: "A dimly lit news desk overlooking a rainy city. Smooth jazz plays faintly in the background.",
		DirectorNotes: "Style: Deep, smooth, authoritative. The late night FM voice.\n" +
			"Pacing: Slow and deliberate, with pauses for effect.\n" +
			"Tone: Serious, soothing, trustworthy.",
	},
	"Puck": {
		Voice: "Puck",
		Role:  "The Mischievous Radio DJ",
		Scene: "A messy, colorful studio filled with toys and fan mail. The On Air sign flickers.",
		DirectorNotes: "Style: Sassy and playful, prone to giggling.\n" +
			"Pacing: Bouncy and irregular.\n" +
			"Tone: Bright, slightly mocking.",
	},
}

var horoscopeTmpl = template.Must(template.New("horoscope").Parse(`
오늘은 {{.Date}}입니다.
FF14의 PvP 콘텐츠인 '크리스탈라인 컨플릭트'를 테마로 하여 황도 12궁의 오늘의 운세를 작성해 주세요.

# 참고 데이터
[Map List]: {{range $i, $m := .Maps}}{{if $i}}, {{end}}{{$m}}{{end}}
[추천 직업 배정]
{{range .Assignments}}- {{.Sign}}: {{.Job}}
{{end}}
# 작성 지침
1. 현실의 업무, 학업, 인간관계에 대한 조언을 해주세요. 게임 요소는 비유로만 사용합니다.
2. 각 별자리마다 맵 목록에서 추천 맵 하나를 고르고, 배정된 직업의 스킬 하나를 자연스럽게 녹여내세요.
3. 3줄 내외로 간결하고 위트 있게 작성하세요.
4. 값은 반드시 "운세 텍스트|추천 맵|추천 직업" 형식을 지키세요.

# 출력 예시
{
  "Aries": "업무가 몰아쳐도 전사처럼 돌파할 수 있는 날입니다.|팔라이스트라|전사"
}

# 결과 (JSON Only)
`))

var jobTmpl = template.Must(template.New("job").Parse(`
오늘은 {{.Date}}입니다.
FF14 PvP '크리스탈라인 컨플릭트'의 오늘의 추천 직업 코멘트를 작성해 주세요.

# 오늘의 직업
{{range .Jobs}}- {{.}}
{{end}}
# 작성 지침
1. 직업마다 오늘 이 직업을 해야 하는 이유를 한두 문장으로, 위트 있게 작성하세요.
2. 키는 위 직업 이름을 그대로 사용하세요.

# 결과 (JSON Only)
{ "직업 이름": "코멘트" }
`))

var podcastTmpl = template.Must(template.New("podcast").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(`
You are the showrunner for "Crystalline Conflict Radio".
Date: {{.Date}}

[Today's Broadcast Topics]
Use these EXACT names so the show sounds authentic to Korean players.
Featured Maps: {{range $i, $m := .Maps}}{{if $i}}, {{end}}{{$m}}{{end}}
Featured Jobs: {{range $i, $j := .Jobs}}{{if $i}}, {{end}}{{$j}}{{end}}

[Constraint]
- Do NOT use potency numbers. Focus on vibes, playstyle and lucky feelings.
- Choose 2-3 topics from the list above. You don't have to use all of them.
- Spoken dialogue must be in Korean.

Generate {{len .Profiles}} distinct radio scripts (approx. 60 seconds each), one per profile.
{{range $i, $p := .Profiles}}
---
# AUDIO PROFILE {{inc $i}}: {{$p.Voice}}
## "{{$p.Role}}"

## THE SCENE: {{$p.Scene}}

### DIRECTOR'S NOTES
{{$p.DirectorNotes}}
---
{{end}}
[Output Format - JSON Only]
The "script" field MUST start with the full profile context exactly as shown above, followed by the spoken dialogue.
[
  { "id": 1, "script": "# AUDIO PROFILE 1: ...", "voice": "Fenrir" }
]
`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func HoroscopePrompt(in HoroscopeInput) (string, error) {
	return render(horoscopeTmpl, in)
}

func JobPrompt(in JobInput) (string, error) {
	return render(jobTmpl, in)
}

func PodcastPrompt(in PodcastInput) (string, error) {
	return render(podcastTmpl, in)
}
