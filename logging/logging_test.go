package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	var c Conf
	c.SetDefaults()
	assert.Equal(t, Conf{Level: "info", Format: "json", OutputPath: "stdout"}, c)
}

func TestNewRejectsBadConf(t *testing.T) {
	_, err := New(Conf{Level: "loud"})
	assert.Error(t, err)
	_, err = New(Conf{Format: "xml"})
	assert.Error(t, err)
}

func TestInstallWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medoc.log")
	logger, undo, err := Install(Conf{Level: "debug", Format: "json", OutputPath: path})
	require.NoError(t, err)

	zap.L().Named("docsvc").Debug("rendered", zap.String("number", "000123"))
	require.Same(t, logger, zap.L())
	undo()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"logger":"docsvc"`)
	assert.Contains(t, string(data), `"number":"000123"`)
	assert.NotSame(t, logger, zap.L())
}
