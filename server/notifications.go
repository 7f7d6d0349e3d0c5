package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/disgo/webhook"
)

const notificationColor = 0x1B73B9

// Notifier posts embeds to a Discord webhook. It is best-effort: failures are
// logged and never surfaced to the caller.
type Notifier struct {
	client *webhook.Client
}

func (n *Notifier) Send(ctx context.Context, title string, message string, actorID string) {
	if n.client == nil {
		return
	}

	embed := discord.NewEmbedBuilder().
		SetTitle(title).
		SetDescription(message).
		SetColor(notificationColor)

	if actorID != "" {
		embed.SetFooterText(fmt.Sprintf("by <@%s>", actorID))
	}

	if _, err := n.client.CreateMessage(discord.NewWebhookMessageCreateBuilder().
		SetEmbeds(embed.Build()).
		Build(),
		rest.CreateWebhookMessageParams{},
		rest.WithCtx(ctx),
	); err != nil {
		slog.ErrorContext(ctx, "failed to send notification", slog.String("title", title), slog.Any("err", err))
	}
}
