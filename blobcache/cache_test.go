package blobcache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeptools/medoc/db/kvdb"
	"github.com/zeptools/medoc/sec"
	"go.uber.org/zap"
)

type memKV struct {
	vals   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newMemKV() *memKV {
	return &memKV{vals: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memKV) Init() error                { return nil }
func (m *memKV) Close() error               { return nil }
func (m *memKV) Ping(context.Context) error { return nil }
func (m *memKV) GetConf() *kvdb.Conf        { return &kvdb.Conf{Type: "mem"} }
func (m *memKV) Exists(_ context.Context, k string) (bool, error) {
	_, ok := m.vals[k]
	return ok, nil
}
func (m *memKV) Delete(_ context.Context, keys ...string) (int64, error) {
	var n int64
	for _, k := range keys {
		if _, ok := m.vals[k]; ok {
			delete(m.vals, k)
			n++
		}
	}
	return n, nil
}
func (m *memKV) Expire(_ context.Context, k string, d time.Duration) (bool, error) {
	if _, ok := m.vals[k]; !ok {
		return false, nil
	}
	m.ttls[k] = d
	return true, nil
}
func (m *memKV) Set(_ context.Context, k string, v any, d time.Duration) error {
	m.vals[k] = v.(string)
	m.ttls[k] = d
	return nil
}
func (m *memKV) Get(_ context.Context, k string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.vals[k]
	return v, ok, nil
}

func newCache(t *testing.T, kv kvdb.Client) *Cache {
	t.Helper()
	cipher, err := sec.NewXChaCha20Poly1305CipherBase64([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return New(kv, cipher, "medoc", time.Minute, zap.NewNop())
}

func TestKey(t *testing.T) {
	c := newCache(t, newMemKV())
	key := c.Key("000123", []byte("{}"))
	assert.Equal(t, "medoc_doc:000123:44136fa355b3678a1146ad16f7e8649e94fb4fc21fe77e8310c060f61caaff8a", key)
	assert.NotEqual(t, key, c.Key("000123", []byte(`{"a":1}`)))
}

func TestRoundTripIsEncrypted(t *testing.T) {
	kv := newMemKV()
	c := newCache(t, kv)
	ctx := context.Background()
	payload := []byte(`{"document_number":"1"}`)

	_, err := c.Get(ctx, "1", payload)
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Put(ctx, "1", payload, []byte("%PDF-1.3 blob")))
	stored := kv.vals[c.Key("1", payload)]
	assert.NotContains(t, stored, "PDF")
	assert.Equal(t, time.Minute, kv.ttls[c.Key("1", payload)])

	blob, err := c.Get(ctx, "1", payload)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 blob", string(blob))
}

func TestEntryBoundToKey(t *testing.T) {
	kv := newMemKV()
	c := newCache(t, kv)
	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "1", []byte("a"), []byte("blob-a")))

	// A value copied under another key must not decrypt there.
	kv.vals[c.Key("2", []byte("a"))] = kv.vals[c.Key("1", []byte("a"))]
	_, err := c.Get(ctx, "2", []byte("a"))
	assert.ErrorIs(t, err, ErrMiss)
	_, still := kv.vals[c.Key("2", []byte("a"))]
	assert.False(t, still, "undecryptable entry is dropped")
}

func TestGetBackendError(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("connection refused")
	_, err := newCache(t, kv).Get(context.Background(), "1", nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMiss))
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}

func TestTouchAndDefaultTTL(t *testing.T) {
	kv := newMemKV()
	c := newCache(t, kv)
	ctx := context.Background()
	ok, err := c.Touch(ctx, "1", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "1", nil, []byte("x")))
	ok, err = c.Touch(ctx, "1", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	cipher, err := sec.NewXChaCha20Poly1305CipherBase64([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, New(kv, cipher, "medoc", 0, zap.NewNop()).TTL())
}
