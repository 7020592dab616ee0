// Package blobcache keeps rendered PDF blobs in the KV database, encrypted at
// rest and keyed by document number plus a digest of the record payload, so
// a changed record never hits a stale blob.
package blobcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zeptools/medoc/db/kvdb"
	"github.com/zeptools/medoc/sec"
	"go.uber.org/zap"
)

var ErrMiss = errors.New("blobcache: miss")

const DefaultTTL = 15 * time.Minute

type Cache struct {
	kv     kvdb.Client
	cipher *sec.XChaCha20Poly1305Cipher
	app    string
	ttl    time.Duration
	log    *zap.Logger
}

func New(kv kvdb.Client, cipher *sec.XChaCha20Poly1305Cipher, appName string, ttl time.Duration, log *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{kv: kv, cipher: cipher, app: appName, ttl: ttl, log: log.Named("blobcache")}
}

// Key is <app>_doc:<number>:<sha256(payload)>.
func (c *Cache) Key(number string, payload []byte) string {
	return c.app + "_doc:" + number + ":" + sec.HashHexSHA256(payload)
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached blob or ErrMiss. An entry that fails to decrypt is
// deleted and reported as a miss.
func (c *Cache) Get(ctx context.Context, number string, payload []byte) ([]byte, error) {
	key := c.Key(number, payload)
	val, found, err := c.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("blobcache: get %s: %w", key, err)
	}
	if !found {
		return nil, ErrMiss
	}
	blob, err := c.cipher.DecodeDecryptWithAD(val, []byte(key))
	if err != nil {
		c.log.Warn("dropping undecryptable entry", zap.String("key", key), zap.Error(err))
		if _, delErr := c.kv.Delete(ctx, key); delErr != nil {
			c.log.Warn("delete failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, ErrMiss
	}
	return blob, nil
}

func (c *Cache) Put(ctx context.Context, number string, payload []byte, blob []byte) error {
	key := c.Key(number, payload)
	val, err := c.cipher.EncryptEncodeWithAD(blob, []byte(key))
	if err != nil {
		return fmt.Errorf("blobcache: encrypt %s: %w", key, err)
	}
	if err := c.kv.Set(ctx, key, val, c.ttl); err != nil {
		return fmt.Errorf("blobcache: set %s: %w", key, err)
	}
	return nil
}

// Touch extends the TTL of a live entry. It reports whether the entry existed.
func (c *Cache) Touch(ctx context.Context, number string, payload []byte) (bool, error) {
	return c.kv.Expire(ctx, c.Key(number, payload), c.ttl)
}
