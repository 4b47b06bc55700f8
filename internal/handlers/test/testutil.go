package test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/ccradio/rotation-bot/internal/domain/service"
	"github.com/ccradio/rotation-bot/internal/handlers"
	"github.com/ccradio/rotation-bot/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type ServiceMocks struct {
	ResponderMock *mocks.MockDiscordResponder
	ClockMock     *mocks.MockRotationClock
	HoroscopeMock *mocks.MockHoroscopeService
	JobMock       *mocks.MockJobService
	PodcastMock   *mocks.MockPodcastService
	DuelMock      *mocks.MockDuelService
	TipMock       *mocks.MockTipService
}

const PublicBaseURL = "https://radio.example.com"

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.DiscordHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ResponderMock: mocks.NewMockDiscordResponder(ctrl),
		ClockMock:     mocks.NewMockRotationClock(ctrl),
		HoroscopeMock: mocks.NewMockHoroscopeService(ctrl),
		JobMock:       mocks.NewMockJobService(ctrl),
		PodcastMock:   mocks.NewMockPodcastService(ctrl),
		DuelMock:      mocks.NewMockDuelService(ctrl),
		TipMock:       mocks.NewMockTipService(ctrl),
	}

	svc := &service.Instance{
		Horoscope: m.HoroscopeMock,
		Job:       m.JobMock,
		Podcast:   m.PodcastMock,
		Duel:      m.DuelMock,
		Tip:       m.TipMock,
	}
	handler = handlers.New(m.ResponderMock, m.ClockMock, svc, PublicBaseURL+"/", zaptest.NewLogger(t))

	return
}

// CommandInteraction builds a guild slash command invoked by userID.
func CommandInteraction(name, guildID, userID string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:      "I1",
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: guildID,
		Member:  &discordgo.Member{User: &discordgo.User{ID: userID}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}
}

// AutocompleteInteraction builds an autocomplete request with one focused option.
func AutocompleteInteraction(name, option string, typed any) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:   "I2",
		Type: discordgo.InteractionApplicationCommandAutocomplete,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: name,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: option, Value: typed, Focused: true},
			},
		},
	}
}

func Option(name string, value any) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Value: value}
}

// Responses captures every call made on the responder.
type Responses struct {
	Respond []*discordgo.InteractionResponse
	Edits   []string
}

func CaptureResponses(m ServiceMocks) *Responses {
	r := &Responses{}
	m.ResponderMock.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			r.Respond = append(r.Respond, resp)
			return nil
		}).AnyTimes()
	m.ResponderMock.EXPECT().
		InteractionResponseEdit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			if edit.Content != nil {
				r.Edits = append(r.Edits, *edit.Content)
			}
			return &discordgo.Message{}, nil
		}).AnyTimes()
	return r
}
