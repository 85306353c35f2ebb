package store

import (
	"time"

	"tallybook/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int
	PingTimeout    time.Duration
}

// LoadConfig reads TALLY_PGSQL_*; Postgres is enabled when DBURL is set
func LoadConfig(app string) Config {
	c := config.New().Prefix("TALLY_PGSQL_")
	url := c.MayString("DBURL", "")
	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(c.MayInt("MAX_CONNS", 8)),
			LogSQL:         c.MayBool("LOG_SQL", false),
			SlowQueryMs:    c.MayInt("SLOW_MS", 250),
			ConnectRetries: c.MayInt("CONNECT_RETRIES", 10),
			PingTimeout:    c.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
	}
}
