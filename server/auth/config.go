package auth

import (
	"fmt"
	"strings"
)

type Config struct {
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	PublicURL    string   `toml:"public_url"`
	GuildID      string   `toml:"guild_id"`
	Whitelist    []string `toml:"whitelist"`
	Admins       []string `toml:"admins"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n ClientID: %s\n ClientSecret: %s\n PublicURL: %s\n GuildID: %s\n Whitelist: %s\n Admins: %s",
		c.ClientID,
		strings.Repeat("*", len(c.ClientSecret)),
		c.PublicURL,
		c.GuildID,
		strings.Join(c.Whitelist, ", "),
		strings.Join(c.Admins, ", "),
	)
}
