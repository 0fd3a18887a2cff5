// Package icons loads the animation frame sets from disk.
package icons

//go:generate go run gen_icons.go

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fyne-io/image/ico"
)

// FramesPerVariant is the number of frames in every variant.
const FramesPerVariant = 5

const dirName = "icons"

var ErrNoIconDir = errors.New("icons: directory not found")

type Variant int

const (
	Dark Variant = iota
	Light
)

var variants = [...]Variant{Dark, Light}

func (v Variant) String() string {
	if v == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the other variant.
func (v Variant) Toggle() Variant {
	if v == Dark {
		return Light
	}
	return Dark
}

// Frame is one decoded still. Tray holds the bytes the tray surface
// accepts on this platform.
type Frame struct {
	Name   string
	Pixels *image.NRGBA
	Tray   []byte
}

func (f *Frame) Width() int  { return f.Pixels.Bounds().Dx() }
func (f *Frame) Height() int { return f.Pixels.Bounds().Dy() }

// FrameSet is immutable after Load.
type FrameSet struct {
	frames [len(variants)][FramesPerVariant]*Frame
}

func (s *FrameSet) Len() int { return FramesPerVariant }

func (s *FrameSet) Frame(v Variant, i int) *Frame {
	return s.frames[v][i]
}

// Size is the total tray payload in bytes.
func (s *FrameSet) Size() uint64 {
	var n uint64
	for _, set := range s.frames {
		for _, f := range set {
			n += uint64(len(f.Tray))
		}
	}
	return n
}

// FileName is the on-disk name of frame i of variant v, e.g. dark_cat_0.ico.
func FileName(v Variant, i int) string {
	return fmt.Sprintf("%s_cat_%d.ico", v, i)
}

// ResolveDir finds the icons directory next to the executable, falling
// back to the working directory.
func ResolveDir() (string, error) {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), dirName))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, dirName))
	}

	for _, dir := range candidates {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w (looked in %v)", ErrNoIconDir, candidates)
}

// Load decodes every frame of every variant from dir. Any missing or
// corrupt file fails the whole load.
func Load(dir string) (*FrameSet, error) {
	set := &FrameSet{}
	for _, v := range variants {
		for i := 0; i < FramesPerVariant; i++ {
			f, err := loadFrame(filepath.Join(dir, FileName(v, i)))
			if err != nil {
				return nil, err
			}
			set.frames[v][i] = f
		}
	}
	return set, nil
}

func loadFrame(path string) (*Frame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("icons: open %s: %w", path, err)
	}

	img, err := ico.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("icons: decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("icons: decode %s: empty image", path)
	}

	pixels := imaging.Clone(img)
	payload, err := trayPayload(raw, pixels)
	if err != nil {
		return nil, fmt.Errorf("icons: encode %s: %w", path, err)
	}

	return &Frame{Name: filepath.Base(path), Pixels: pixels, Tray: payload}, nil
}
