//go:build windows

package log

import (
	"os"
	"path/filepath"
)

// %LOCALAPPDATA%\runcat\logs
func getDefaultDir() (string, error) {
	local, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(local, appName, "logs"), nil
}
