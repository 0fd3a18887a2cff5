//go:build windows

package icons

import "image"

// The Windows notification area takes ICO data as-is.
func trayPayload(raw []byte, _ *image.NRGBA) ([]byte, error) {
	return raw, nil
}
