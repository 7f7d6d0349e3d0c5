package discord

import (
	"fmt"
	"strings"

	"github.com/knighthacks/blade/internal/xtime"
)

type Config struct {
	Token   string         `toml:"token"`
	GuildID string         `toml:"guild_id"`
	Every   xtime.Duration `toml:"every"`
	Burst   int            `toml:"burst"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Token: %s\n GuildID: %s\n Every: %s\n Burst: %d",
		strings.Repeat("*", len(c.Token)),
		c.GuildID,
		c.Every,
		c.Burst,
	)
}
