package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/time/rate"
)

func New(cfg Config) (*Client, error) {
	guildID, err := snowflake.Parse(cfg.GuildID)
	if err != nil {
		return nil, fmt.Errorf("invalid guild ID %q: %w", cfg.GuildID, err)
	}

	return &Client{
		rest:    rest.New(rest.NewClient(cfg.Token)),
		guildID: guildID,
		limiter: rate.NewLimiter(rate.Every(cfg.Every.Std()), cfg.Burst),
	}, nil
}

type Client struct {
	rest    rest.Rest
	guildID snowflake.ID
	limiter *rate.Limiter
}

// CreateScheduledEvent publishes an external guild scheduled event and returns
// its ID. An empty ID is never returned alongside a nil error.
func (c *Client) CreateScheduledEvent(ctx context.Context, name string, description string, location string, start time.Time, end time.Time) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	event, err := c.rest.CreateGuildScheduledEvent(c.guildID, discord.GuildScheduledEventCreate{
		Name:               name,
		Description:        description,
		PrivacyLevel:       discord.ScheduledEventPrivacyLevelGuildOnly,
		ScheduledStartTime: start,
		ScheduledEndTime:   &end,
		EntityType:         discord.ScheduledEventEntityTypeExternal,
		EntityMetaData: &discord.EntityMetaData{
			Location: location,
		},
	}, rest.WithCtx(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to create guild scheduled event: %w", err)
	}

	return event.ID.String(), nil
}
