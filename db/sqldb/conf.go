package sqldb

import "time"

type Conf struct {
	Type string `json:"type"` // mysql, pgsql
	Host string `json:"host"`
	Port int    `json:"port"`
	User string `json:"user"`
	PW   string `json:"pw"`
	DB   string `json:"db"`
	TZ   string `json:"tz"`  // Connection Timezone
	DSN  string `json:"dsn"` // To Overwrite Default DSN

	MaxConns        int `json:"max_conns"`
	ConnMaxLifetime int `json:"conn_max_lifetime_sec"`
}

const (
	DefaultMaxConns        = 10
	DefaultConnMaxLifetime = 3 * time.Minute
)

func (c *Conf) MaxConnsOrDefault() int {
	if c.MaxConns <= 0 {
		return DefaultMaxConns
	}
	return c.MaxConns
}

func (c *Conf) ConnMaxLifetimeOrDefault() time.Duration {
	if c.ConnMaxLifetime <= 0 {
		return DefaultConnMaxLifetime
	}
	return time.Duration(c.ConnMaxLifetime) * time.Second
}
