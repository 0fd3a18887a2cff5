//go:build ignore

// Draws the running-cat frames (dark_cat_N.ico, light_cat_N.ico) at 16,
// 32 and 48 px. Invoked by: go generate ./icons
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

const frames = 5

var (
	sizes = []int{16, 32, 48}
	dark  = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	light = color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF2, A: 0xFF}
)

func main() {
	for _, v := range []struct {
		name string
		c    color.NRGBA
	}{{"dark", dark}, {"light", light}} {
		for i := 0; i < frames; i++ {
			var pngs [][]byte
			for _, size := range sizes {
				var buf bytes.Buffer
				if err := png.Encode(&buf, cat(size, i, v.c)); err != nil {
					fmt.Fprintf(os.Stderr, "png encode %s %d: %v\n", v.name, size, err)
					os.Exit(1)
				}
				pngs = append(pngs, buf.Bytes())
			}
			name := fmt.Sprintf("%s_cat_%d.ico", v.name, i)
			if err := os.WriteFile(name, ico(sizes, pngs), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "write %s: %v\n", name, err)
				os.Exit(1)
			}
			fmt.Println("wrote", name)
		}
	}
}

// cat draws frame i of the run cycle on a unit grid scaled to size.
func cat(size, i int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size) / 16
	phase := 2 * math.Pi * float64(i) / frames
	bob := math.Sin(phase) * 0.6

	fill := func(inside func(x, y float64) bool) {
		for py := 0; py < size; py++ {
			for px := 0; px < size; px++ {
				x, y := (float64(px)+0.5)/s, (float64(py)+0.5)/s
				if inside(x, y) {
					img.SetNRGBA(px, py, c)
				}
			}
		}
	}

	// body
	fill(func(x, y float64) bool {
		dx, dy := (x-7)/4.5, (y-9-bob)/2.2
		return dx*dx+dy*dy <= 1
	})
	// head
	fill(func(x, y float64) bool {
		return math.Hypot(x-12, y-6.5-bob) <= 2.2
	})
	// ears
	fill(func(x, y float64) bool {
		ey := y - bob
		return (ey >= 3.2 && ey <= 5 && math.Abs(x-11) <= (ey-3.2)*0.6) ||
			(ey >= 3.2 && ey <= 5 && math.Abs(x-13.2) <= (ey-3.2)*0.6)
	})
	// tail
	fill(func(x, y float64) bool {
		ty := 7.5 - bob - (2.5-x)*0.8
		return x >= 0.5 && x <= 2.8 && math.Abs(y-ty) <= 0.6
	})
	// legs swing in opposite pairs
	for leg, hip := range []float64{4.5, 6, 8.5, 10} {
		swing := math.Sin(phase+float64(leg%2)*math.Pi) * 1.4
		fill(func(x, y float64) bool {
			top := 10 + bob
			if y < top || y > 14.5 {
				return false
			}
			t := (y - top) / (14.5 - top)
			return math.Abs(x-(hip+swing*t)) <= 0.55
		})
	}
	return img
}

// ico builds an ICO file from PNG-encoded images.
func ico(sizes []int, pngs [][]byte) []byte {
	n := len(sizes)
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(n)})

	offset := uint32(6 + n*16)
	for i, size := range sizes {
		w := uint8(size)
		if size >= 256 {
			w = 0
		}
		buf.Write([]byte{w, w, 0, 0})
		binary.Write(&buf, binary.LittleEndian, uint16(1))
		binary.Write(&buf, binary.LittleEndian, uint16(32))
		binary.Write(&buf, binary.LittleEndian, uint32(len(pngs[i])))
		binary.Write(&buf, binary.LittleEndian, offset)
		offset += uint32(len(pngs[i]))
	}
	for _, p := range pngs {
		buf.Write(p)
	}
	return buf.Bytes()
}
