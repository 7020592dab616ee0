package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeptools/medoc/pdfs"
)

func writeConfig(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "config"), 0o755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, "config", name), []byte(body), 0o600))
	}
	return root
}

func TestLoadAppliesDefaults(t *testing.T) {
	root := writeConfig(t, map[string]string{".core.json": `{"app_name":"clinic"}`})

	var c Core
	require.NoError(t, c.Load(root))
	assert.Equal(t, "clinic", c.AppName)
	assert.Equal(t, ":8080", c.Listen)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout())
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, pdfs.A4Size, c.Paper())
	assert.Equal(t, "clinic", c.Documents.Creator)
	assert.Equal(t, "main", c.Documents.SQLDB)
	assert.Equal(t, 15*time.Minute, c.Documents.Cache.TTL())
	assert.Equal(t, 20, c.Throttle.Burst)
}

func TestLoadReadsSections(t *testing.T) {
	root := writeConfig(t, map[string]string{".core.json": `{
		"listen": "127.0.0.1:9000",
		"log": {"level": "debug", "format": "console"},
		"documents": {"paper": "Letter", "max_body_bytes": 4096, "cache": {"enabled": true, "ttl_sec": 60, "key": "k"}},
		"throttle": {"enabled": true, "burst": 5, "increment": 1, "period_ms": 1000},
		"auth": {"enabled": true, "keys_dir": "keys", "issuer": "https://idp.example", "audience": "medoc"}
	}`})

	var c Core
	require.NoError(t, c.Load(root))
	assert.Equal(t, "127.0.0.1:9000", c.Listen)
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, pdfs.LetterSize, c.Paper())
	assert.EqualValues(t, 4096, c.Documents.MaxBodyBytes)
	assert.Equal(t, time.Minute, c.Documents.Cache.TTL())
	assert.Equal(t, time.Second, c.Throttle.BucketConf().Period)
	assert.Equal(t, filepath.Join(root, "keys"), c.ResolvePath(c.Auth.KeysDir))
	assert.Equal(t, "/etc/medoc/keys", c.ResolvePath("/etc/medoc/keys"))
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"malformed":          `{"listen":`,
		"unknown paper":      `{"documents":{"paper":"B5"}}`,
		"cache without key":  `{"documents":{"cache":{"enabled":true}}}`,
		"auth without keys":  `{"auth":{"enabled":true}}`,
		"negative increment": `{"throttle":{"enabled":true,"increment":-1}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var c Core
			assert.Error(t, c.Load(writeConfig(t, map[string]string{".core.json": body})))
		})
	}

	var c Core
	assert.ErrorIs(t, c.Load(t.TempDir()), os.ErrNotExist)
}

func TestPrepareSQLDatabasesUnsupportedType(t *testing.T) {
	root := writeConfig(t, map[string]string{
		".core.json":          `{}`,
		".sql-databases.json": `{"main":{"type":"oracle"}}`,
	})
	var c Core
	require.NoError(t, c.Load(root))
	assert.Error(t, c.PrepareSQLDatabases())

	_, err := c.DocumentsSQLDB()
	assert.Error(t, err)
}

func TestPrepareKVDatabaseUnsupportedType(t *testing.T) {
	root := writeConfig(t, map[string]string{
		".core.json":         `{}`,
		".kv-databases.json": `{"type":"memcached"}`,
	})
	var c Core
	require.NoError(t, c.Load(root))
	assert.Error(t, c.PrepareKVDatabase())
}

func TestPrepareBlobCipher(t *testing.T) {
	c := Core{Documents: DocumentsConf{Cache: CacheConf{Key: "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="}}}
	require.NoError(t, c.PrepareBlobCipher())
	assert.NotNil(t, c.BlobCipher)

	c.Documents.Cache.Key = "short"
	assert.Error(t, c.PrepareBlobCipher())
}

func TestAppRootFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(RootEnvVar, dir)
	root, err := AppRootFromEnv()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}
