package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeptools/medoc/db/kvdb"
)

func TestOptions(t *testing.T) {
	c := &Client{Conf: &kvdb.Conf{Type: DBType, Host: "cache", Port: 6379, PW: "s", DB: 2}}
	opts := c.options()
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "s", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestCloseUninitialized(t *testing.T) {
	c := &Client{Conf: &kvdb.Conf{}}
	assert.NoError(t, c.Close())
}
