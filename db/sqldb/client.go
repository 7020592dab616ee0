package sqldb

import (
	"context"
)

type Client interface {
	Init() error
	Close() error
	Handle // Methods required for Handle are also required, so, promote it
	GetConf() *Conf
	GetDSN() string
	Ping(ctx context.Context) error
}
