package mysql

import (
	"testing"

	drv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeptools/medoc/db/sqldb"
)

func TestDSN(t *testing.T) {
	dsn, err := DSN(&sqldb.Conf{Host: "db", Port: 3306, User: "u", PW: "p", DB: "medoc", TZ: "America/Guayaquil"})
	require.NoError(t, err)

	cfg, err := drv.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "u", cfg.User)
	assert.Equal(t, "db:3306", cfg.Addr)
	assert.Equal(t, "medoc", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, "America/Guayaquil", cfg.Loc.String())
}

func TestDSNOverride(t *testing.T) {
	dsn, err := DSN(&sqldb.Conf{DSN: "u:p@tcp(x:1)/y"})
	require.NoError(t, err)
	assert.Equal(t, "u:p@tcp(x:1)/y", dsn)
}

func TestDSNBadTZ(t *testing.T) {
	_, err := DSN(&sqldb.Conf{TZ: "Nowhere/Atlantis"})
	require.Error(t, err)
}

func TestFactoryRegistered(t *testing.T) {
	client, err := sqldb.New(&sqldb.Conf{Type: DBType})
	require.NoError(t, err)
	assert.IsType(t, &Client{}, client)
	assert.NoError(t, client.Close())
}
