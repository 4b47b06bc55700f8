package discord

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdNow       CommandType = "지금"
	CmdNowEn     CommandType = "now"
	CmdRotation  CommandType = "로테이션"
	CmdWhen      CommandType = "언제"
	CmdHoroscope CommandType = "운세"
	CmdJob       CommandType = "직업"
	CmdPodcast   CommandType = "팟캐스트"
	CmdDuel      CommandType = "결투"
	CmdStats     CommandType = "전적"
	CmdTip       CommandType = "팁"
	CmdHelp      CommandType = "도움말"
)

// Option names as shown in the Discord client.
const (
	OptCount    = "개수"
	OptMapName  = "맵이름"
	OptSign     = "별자리"
	OptVoice    = "목소리"
	OptOpponent = "상대"
	OptTarget   = "대상"
	OptKeyword  = "키워드"
)

var commandTypes = map[string]CommandType{
	string(CmdNow):       CmdNow,
	string(CmdNowEn):     CmdNow,
	string(CmdRotation):  CmdRotation,
	string(CmdWhen):      CmdWhen,
	string(CmdHoroscope): CmdHoroscope,
	string(CmdJob):       CmdJob,
	string(CmdPodcast):   CmdPodcast,
	string(CmdDuel):      CmdDuel,
	string(CmdStats):     CmdStats,
	string(CmdTip):       CmdTip,
	string(CmdHelp):      CmdHelp,
}

// ParseCommand maps an application command name to its type. The English
// alias resolves to the same type as its Korean name.
func ParseCommand(name string) (CommandType, error) {
	cmd, ok := commandTypes[strings.TrimSpace(name)]
	if !ok {
		return "", fmt.Errorf("unknown command: %s", name)
	}
	return cmd, nil
}

// IsSlow reports whether the command may call the AI model and must be deferred.
func (c CommandType) IsSlow() bool {
	switch c {
	case CmdHoroscope, CmdJob, CmdPodcast:
		return true
	}
	return false
}

func GetHelpText() string {
	return `**사용 가능한 명령어**

**로테이션:**
• ` + "`/지금`" + ` (` + "`/now`" + `) - 현재 맵과 다음 맵
• ` + "`/로테이션 [개수]`" + ` - 향후 로테이션 일정 (기본 5개, 최대 10개)
• ` + "`/언제 맵이름`" + ` - 특정 맵의 다음 일정 5개

**오늘의 콘텐츠:**
• ` + "`/운세 별자리`" + ` - 크리스탈라인 컨플릭트 운세
• ` + "`/직업`" + ` - 오늘의 추천 직업
• ` + "`/팟캐스트 [목소리]`" + ` - 크리스탈라인 라디오

**놀이:**
• ` + "`/결투 상대`" + ` - 1~100 주사위 결투
• ` + "`/전적 [대상]`" + ` - 결투 전적
• ` + "`/팁 [키워드]`" + ` - 공략 팁`
}
