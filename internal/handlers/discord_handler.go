package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/discord"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/ccradio/rotation-bot/internal/domain/service"
	"go.uber.org/zap"
)

const (
	fastTimeout = 10 * time.Second
	slowTimeout = 10 * time.Minute

	maxAutocompleteChoices = 25

	panicReply = "명령어 실행 중 오류가 발생했습니다."
)

var rotationCountChoices = []int{3, 5, 7, 10}

type DiscordHandler struct {
	responder     contract.DiscordResponder
	clock         contract.RotationClock
	horoscope     contract.HoroscopeService
	job           contract.JobService
	podcast       contract.PodcastService
	duel          contract.DuelService
	tip           contract.TipService
	publicBaseURL string
	logger        *zap.Logger
}

func New(responder contract.DiscordResponder, clock contract.RotationClock, svc *service.Instance, publicBaseURL string, logger *zap.Logger) *DiscordHandler {
	return &DiscordHandler{
		responder:     responder,
		clock:         clock,
		horoscope:     svc.Horoscope,
		job:           svc.Job,
		podcast:       svc.Podcast,
		duel:          svc.Duel,
		tip:           svc.Tip,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// reply is what a command wants to send back.
type reply struct {
	content   string
	ephemeral bool
}

// replyState tracks what the user has been sent for one interaction.
type replyState struct {
	responded bool
	deferred  bool
}

// OnInteraction is registered with the Discord session.
func (h *DiscordHandler) OnInteraction(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	h.Handle(ic.Interaction)
}

// Handle dispatches an interaction. It never panics; a command that does
// still gets an error reply.
func (h *DiscordHandler) Handle(i *discordgo.Interaction) {
	var state replyState
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic while handling interaction", zap.Any("panic", r), zap.String("interaction_id", i.ID))
			if i.Type == discordgo.InteractionApplicationCommand {
				h.replyAfterPanic(i, state)
			}
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(i, &state)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(i)
	}
}

func (h *DiscordHandler) handleCommand(i *discordgo.Interaction, state *replyState) {
	data := i.ApplicationCommandData()
	log := h.logger.With(zap.String("command", data.Name), zap.String("guild_id", i.GuildID), zap.String("user_id", userID(i)))

	cmd, err := discord.ParseCommand(data.Name)
	if err != nil {
		log.Warn("unknown command")
		h.respond(i, reply{content: "알 수 없는 명령어입니다.", ephemeral: true}, state, log)
		return
	}

	opts := optionMap(data.Options)

	if !cmd.IsSlow() {
		ctx, cancel := context.WithTimeout(context.Background(), fastTimeout)
		defer cancel()
		h.respond(i, h.run(ctx, cmd, i, opts, log), state, log)
		return
	}

	err = h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	state.responded = true
	if err != nil {
		log.Error("failed to defer response", zap.Error(err))
		return
	}
	state.deferred = true

	ctx, cancel := context.WithTimeout(context.Background(), slowTimeout)
	defer cancel()

	r := h.run(ctx, cmd, i, opts, log)
	if _, err := h.responder.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &r.content}); err != nil {
		log.Error("failed to edit deferred response", zap.Error(err))
	}
}

func (h *DiscordHandler) run(ctx context.Context, cmd discord.CommandType, i *discordgo.Interaction, opts options, log *zap.Logger) reply {
	switch cmd {
	case discord.CmdNow:
		return h.handleNow()
	case discord.CmdRotation:
		return h.handleRotation(opts, log)
	case discord.CmdWhen:
		return h.handleWhen(opts, log)
	case discord.CmdHoroscope:
		return h.handleHoroscope(ctx, opts, log)
	case discord.CmdJob:
		return h.handleJob(ctx, log)
	case discord.CmdPodcast:
		return h.handlePodcast(ctx, opts, log)
	case discord.CmdDuel:
		return h.handleDuel(ctx, i, opts, log)
	case discord.CmdStats:
		return h.handleStats(ctx, i, opts, log)
	case discord.CmdTip:
		return h.handleTip(ctx, opts, log)
	default:
		return reply{content: discord.GetHelpText(), ephemeral: true}
	}
}

func (h *DiscordHandler) handleNow() reply {
	return reply{content: discord.FormatNow(h.clock.CurrentAndNext(time.Now()))}
}

func (h *DiscordHandler) handleRotation(opts options, log *zap.Logger) reply {
	count := domain.DefaultRotationCount
	if n, ok := opts.integer(discord.OptCount); ok {
		count = n
	}
	if count < 1 {
		count = domain.DefaultRotationCount
	}
	if count > domain.MaxRotationCount {
		count = domain.MaxRotationCount
	}

	windows, err := h.clock.EnumerateFrom(time.Now(), count)
	if err != nil {
		return h.errorReply(err, log)
	}
	return reply{content: discord.FormatSchedule(windows)}
}

func (h *DiscordHandler) handleWhen(opts options, log *zap.Logger) reply {
	name := opts.str(discord.OptMapName)

	occ, err := h.clock.NextOccurrences(name, time.Now(), domain.ScheduleCount)
	if domain.IsNotFound(err) {
		return reply{content: fmt.Sprintf("❌ '%s' 맵을 찾을 수 없습니다.", name), ephemeral: true}
	}
	if err != nil {
		return h.errorReply(err, log)
	}
	return reply{content: discord.FormatOccurrences(name, occ)}
}

func (h *DiscordHandler) handleHoroscope(ctx context.Context, opts options, log *zap.Logger) reply {
	sign, ok := domain.FindZodiacSign(opts.str(discord.OptSign))
	if !ok {
		return reply{content: "❌ 별자리를 선택해 주세요.", ephemeral: true}
	}

	daily, err := h.horoscope.GetDaily(ctx, sign.Key)
	if err != nil {
		return h.errorReply(err, log)
	}
	return reply{content: discord.FormatHoroscope(sign, daily)}
}

func (h *DiscordHandler) handleJob(ctx context.Context, log *zap.Logger) reply {
	recs, err := h.job.GetDaily(ctx)
	if err != nil {
		return h.errorReply(err, log)
	}
	return reply{content: discord.FormatJobs(recs)}
}

func (h *DiscordHandler) handlePodcast(ctx context.Context, opts options, log *zap.Logger) reply {
	var (
		p   *entity.Podcast
		err error
	)
	if voice := opts.str(discord.OptVoice); voice != "" {
		p, err = h.podcast.ByVoice(ctx, voice)
	} else {
		p, err = h.podcast.Random(ctx)
	}
	if domain.IsNotFound(err) {
		return reply{content: "📻 오늘의 방송이 아직 준비되지 않았습니다."}
	}
	if err != nil {
		return h.errorReply(err, log)
	}
	return reply{content: discord.FormatPodcast(p, h.publicBaseURL+p.AudioPath)}
}

func (h *DiscordHandler) handleDuel(ctx context.Context, i *discordgo.Interaction, opts options, log *zap.Logger) reply {
	if i.GuildID == "" {
		return reply{content: "결투는 서버에서만 할 수 있습니다.", ephemeral: true}
	}
	opponent := opts.user(discord.OptOpponent)
	if opponent == "" {
		return reply{content: "❌ 상대를 선택해 주세요.", ephemeral: true}
	}
	if opponent == userID(i) {
		return reply{content: "❌ 자기 자신과는 결투할 수 없습니다.", ephemeral: true}
	}

	result, err := h.duel.Duel(ctx, i.GuildID, userID(i), opponent)
	if err != nil {
		return h.errorReply(err, log)
	}
	return reply{content: discord.FormatDuel(result)}
}

func (h *DiscordHandler) handleStats(ctx context.Context, i *discordgo.Interaction, opts options, log *zap.Logger) reply {
	target := opts.user(discord.OptTarget)
	if target == "" {
		target = userID(i)
	}

	rec, err := h.duel.Stats(ctx, i.GuildID, target)
	if err != nil {
		return h.errorReply(err, log)
	}
	return reply{content: discord.FormatStats(rec)}
}

func (h *DiscordHandler) handleTip(ctx context.Context, opts options, log *zap.Logger) reply {
	keyword := opts.str(discord.OptKeyword)

	tip, err := h.tip.Random(ctx, keyword)
	if domain.IsNotFound(err) {
		if keyword == "" {
			return reply{content: "등록된 팁이 없습니다.", ephemeral: true}
		}
		return reply{content: fmt.Sprintf("'%s'에 대한 팁이 없습니다.", keyword), ephemeral: true}
	}
	if err != nil {
		return h.errorReply(err, log)
	}
	return reply{content: discord.FormatTip(tip)}
}

func (h *DiscordHandler) handleAutocomplete(i *discordgo.Interaction) {
	data := i.ApplicationCommandData()
	focused := focusedOption(data.Options)
	if focused == nil {
		return
	}
	typed := strings.TrimSpace(fmt.Sprint(focused.Value))

	var choices []*discordgo.ApplicationCommandOptionChoice
	switch focused.Name {
	case discord.OptCount:
		for _, n := range rotationCountChoices {
			s := strconv.Itoa(n)
			if strings.HasPrefix(s, typed) {
				choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: s + "개 보기", Value: n})
			}
		}
	case discord.OptMapName:
		for _, m := range h.clock.Maps() {
			if strings.Contains(m.Name, typed) {
				choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: m.Name, Value: m.Name})
			}
			if len(choices) == maxAutocompleteChoices {
				break
			}
		}
	}

	err := h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		h.logger.Error("failed to answer autocomplete", zap.String("option", focused.Name), zap.Error(err))
	}
}

func (h *DiscordHandler) respond(i *discordgo.Interaction, r reply, state *replyState, log *zap.Logger) {
	data := &discordgo.InteractionResponseData{Content: r.content}
	if r.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	state.responded = true
	if err != nil {
		log.Error("failed to respond", zap.Error(err))
	}
}

// replyAfterPanic edits a deferred reply or answers ephemerally when nothing
// was sent yet.
func (h *DiscordHandler) replyAfterPanic(i *discordgo.Interaction, state replyState) {
	content := panicReply
	switch {
	case state.deferred:
		if _, err := h.responder.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content}); err != nil {
			h.logger.Error("failed to edit deferred response after panic", zap.Error(err))
		}
	case !state.responded:
		h.respond(i, reply{content: content, ephemeral: true}, &state, h.logger)
	}
}

func (h *DiscordHandler) errorReply(err error, log *zap.Logger) reply {
	switch {
	case errors.Is(err, domain.ErrAIDisabled):
		return reply{content: "AI 기능이 설정되지 않았습니다.", ephemeral: true}
	case domain.IsInvalidArgument(err):
		return reply{content: "❌ 잘못된 입력입니다.", ephemeral: true}
	case domain.IsNotFound(err):
		return reply{content: "❌ 결과를 찾을 수 없습니다.", ephemeral: true}
	}
	log.Error("command failed", zap.Error(err))
	return reply{content: "오류가 발생했습니다. 잠시 후 다시 시도해 주세요.", ephemeral: true}
}

func userID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
