package contract

//go:generate mockgen -source=discord.go -destination=../../../mocks/discord_mock.go -package=mocks

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// DiscordResponder defines the interaction calls the handlers make.
// *discordgo.Session satisfies it; tests use a mock.
type DiscordResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer publishes a plain-text message to some channel
type Announcer interface {
	Announce(ctx context.Context, message string) error
}
