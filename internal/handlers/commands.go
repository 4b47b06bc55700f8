package handlers

import (
	"github.com/bwmarrin/discordgo"
	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/discord"
)

// Commands returns the application commands to register with Discord.
func Commands() []*discordgo.ApplicationCommand {
	minCount := 1.0

	signChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.ZodiacSigns))
	for _, z := range domain.ZodiacSigns {
		signChoices = append(signChoices, &discordgo.ApplicationCommandOptionChoice{Name: z.Name, Value: z.Key})
	}

	voiceChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.PodcastVoices))
	for _, v := range domain.PodcastVoices {
		voiceChoices = append(voiceChoices, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
	}

	return []*discordgo.ApplicationCommand{
		{Name: string(discord.CmdNow), Description: "현재 맵과 다음 맵을 보여줍니다"},
		{Name: string(discord.CmdNowEn), Description: "Show the current and next map"},
		{
			Name:        string(discord.CmdRotation),
			Description: "향후 로테이션 일정을 보여줍니다",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:         discordgo.ApplicationCommandOptionInteger,
				Name:         discord.OptCount,
				Description:  "보여줄 개수 (최대 10)",
				MinValue:     &minCount,
				MaxValue:     float64(domain.MaxRotationCount),
				Autocomplete: true,
			}},
		},
		{
			Name:        string(discord.CmdWhen),
			Description: "특정 맵이 언제 열리는지 알려줍니다",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         discord.OptMapName,
				Description:  "맵 이름",
				Required:     true,
				Autocomplete: true,
			}},
		},
		{
			Name:        string(discord.CmdHoroscope),
			Description: "오늘의 크리스탈라인 컨플릭트 운세",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        discord.OptSign,
				Description: "별자리",
				Required:    true,
				Choices:     signChoices,
			}},
		},
		{Name: string(discord.CmdJob), Description: "오늘의 추천 직업"},
		{
			Name:        string(discord.CmdPodcast),
			Description: "오늘의 크리스탈라인 라디오",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        discord.OptVoice,
				Description: "진행자 목소리",
				Choices:     voiceChoices,
			}},
		},
		{
			Name:        string(discord.CmdDuel),
			Description: "주사위 결투를 신청합니다",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        discord.OptOpponent,
				Description: "결투 상대",
				Required:    true,
			}},
		},
		{
			Name:        string(discord.CmdStats),
			Description: "결투 전적을 보여줍니다",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        discord.OptTarget,
				Description: "조회할 멤버 (기본: 나)",
			}},
		},
		{
			Name:        string(discord.CmdTip),
			Description: "무작위 팁을 보여줍니다",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        discord.OptKeyword,
				Description: "키워드 또는 카테고리",
			}},
		},
		{Name: string(discord.CmdHelp), Description: "명령어 목록"},
	}
}
