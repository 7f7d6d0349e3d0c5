package storage

import (
	"fmt"
	"strings"
)

type Config struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Secure    bool   `toml:"secure"`
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Endpoint: %s\n AccessKey: %s\n SecretKey: %s\n Secure: %t\n Bucket: %s\n Region: %s",
		c.Endpoint,
		c.AccessKey,
		strings.Repeat("*", len(c.SecretKey)),
		c.Secure,
		c.Bucket,
		c.Region,
	)
}
