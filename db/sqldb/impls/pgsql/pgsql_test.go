package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeptools/medoc/db/sqldb"
)

func TestDSN(t *testing.T) {
	conf := &sqldb.Conf{Type: DBType, Host: "db", Port: 5432, User: "u", PW: "p", DB: "medoc"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=medoc sslmode=disable TimeZone=UTC", DSN(conf))

	conf.DSN = "postgres://x"
	assert.Equal(t, "postgres://x", DSN(conf))
}

func TestFactoryRegistered(t *testing.T) {
	client, err := sqldb.New(&sqldb.Conf{Type: DBType})
	require.NoError(t, err)
	assert.IsType(t, &Client{}, client)
	assert.NoError(t, client.Close())
}

func TestBoolScanShim(t *testing.T) {
	var flag bool
	var name string
	dest := []any{&flag, &name}
	raw := boolsAsInt16(dest)
	*(raw[0].(*int16)) = 1
	fillBools(dest, raw)
	assert.True(t, flag)
	assert.Same(t, &name, raw[1])
}
