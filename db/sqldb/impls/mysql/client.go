package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	drv "github.com/go-sql-driver/mysql"
	"github.com/zeptools/medoc/db/sqldb"
	"go.uber.org/zap"
)

const DBType = "mysql"

func init() {
	sqldb.RegisterFactory(DBType, func(conf *sqldb.Conf) (sqldb.Client, error) {
		return &Client{Conf: conf}, nil
	})
}

type Client struct {
	Handle // [Embedded] for Promoted Methods
	Conf   *sqldb.Conf
	dsn    string
}

// Ensure mysql.Client implements sqldb.Client interface
var _ sqldb.Client = (*Client)(nil)

func (c *Client) Init() error {
	var err error
	if c.dsn, err = DSN(c.Conf); err != nil {
		return err
	}
	if c.DB, err = sql.Open(DBType, c.dsn); err != nil {
		return err
	}
	c.DB.SetConnMaxLifetime(c.Conf.ConnMaxLifetimeOrDefault())
	c.DB.SetMaxOpenConns(c.Conf.MaxConnsOrDefault())
	c.DB.SetMaxIdleConns(c.Conf.MaxConnsOrDefault())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = c.Ping(ctx); err != nil {
		return fmt.Errorf("mysql ping failed: %w", err)
	}
	zap.L().Named("mysql").Info("client initialized", zap.String("host", c.Conf.Host), zap.String("db", c.Conf.DB))
	return nil
}

// DSN returns conf.DSN when set, else one built with the driver's Config.
func DSN(conf *sqldb.Conf) (string, error) {
	if conf.DSN != "" {
		return conf.DSN, nil
	}
	cfg := drv.NewConfig()
	cfg.User = conf.User
	cfg.Passwd = conf.PW
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", conf.Host, conf.Port)
	cfg.DBName = conf.DB
	cfg.ParseTime = true
	if conf.TZ != "" {
		loc, err := time.LoadLocation(conf.TZ)
		if err != nil {
			return "", fmt.Errorf("invalid mysql tz %q: %w", conf.TZ, err)
		}
		cfg.Loc = loc
	}
	cfg.Params = map[string]string{"sql_mode": "'ANSI_QUOTES'"}
	return cfg.FormatDSN(), nil
}

func (c *Client) GetConf() *sqldb.Conf {
	return c.Conf
}

func (c *Client) GetDSN() string {
	return c.dsn
}

func (c *Client) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("mysql client not initialized")
	}
	return c.DB.PingContext(ctx)
}

func (c *Client) Close() error {
	if c.DB == nil {
		return nil
	}
	log := zap.L().Named("mysql")
	log.Info("closing client")
	if err := c.DB.Close(); err != nil {
		return err
	}
	log.Info("client closed")
	return nil
}
