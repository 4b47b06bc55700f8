// Package notify delivers rotation announcements to chat channels.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// channelSender is the part of *discordgo.Session the Discord announcer uses.
type channelSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordAnnouncer posts to a fixed Discord channel.
type DiscordAnnouncer struct {
	session   channelSender
	channelID string
}

func NewDiscordAnnouncer(session channelSender, channelID string) *DiscordAnnouncer {
	return &DiscordAnnouncer{session: session, channelID: channelID}
}

func (a *DiscordAnnouncer) Announce(ctx context.Context, message string) error {
	if _, err := a.session.ChannelMessageSend(a.channelID, message, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	return nil
}

// SlackAnnouncer mirrors announcements to a Slack incoming webhook.
type SlackAnnouncer struct {
	webhookURL string
}

func NewSlackAnnouncer(webhookURL string) *SlackAnnouncer {
	return &SlackAnnouncer{webhookURL: webhookURL}
}

func (a *SlackAnnouncer) Announce(ctx context.Context, message string) error {
	if err := slack.PostWebhookContext(ctx, a.webhookURL, &slack.WebhookMessage{Text: message}); err != nil {
		return fmt.Errorf("failed to post slack webhook: %w", err)
	}
	return nil
}

// Multi fans a message out to every announcer and joins their errors.
type Multi []contract.Announcer

func (m Multi) Announce(ctx context.Context, message string) error {
	var errs []error
	for _, a := range m {
		if err := a.Announce(ctx, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
