//go:build !windows

package icons

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// StatusNotifierItem and NSStatusItem take PNG.
func trayPayload(_ []byte, img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
