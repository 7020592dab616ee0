package conf

import (
	"os"
	"path/filepath"
)

const RootEnvVar = "MEDOC_ROOT"

// AppRootFromEnv returns $MEDOC_ROOT, or the working directory when unset
func AppRootFromEnv() (string, error) {
	if root := os.Getenv(RootEnvVar); root != "" {
		return filepath.Abs(root)
	}
	return os.Getwd()
}

func (c *Core) ConfigPath(name string) string {
	return filepath.Join(c.AppRoot, "config", name)
}

// ResolvePath leaves absolute paths alone and roots relative ones at AppRoot
func (c *Core) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.AppRoot, p)
}
