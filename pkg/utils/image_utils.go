package utils

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
)

// DecodeImage opens and decodes an image from fsys.
// Supported formats: PNG and JPEG.
//
// Returns an error if the file cannot be opened or decoded; callers decide
// whether that is fatal.
func DecodeImage(fsys fs.FS, path string) (image.Image, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// DecodeImageConfig reads only the image header, which is enough to learn
// the pixel size without decoding the whole file.
func DecodeImageConfig(fsys fs.FS, path string) (image.Config, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to decode image header %s: %w", path, err)
	}
	return cfg, nil
}

// AverageColor returns the alpha-weighted average colour of img inside rect.
// Fully transparent regions yield a zero colour (A == 0).
//
// The terminal renderer uses this to shade one character cell per sprite.
func AverageColor(img image.Image, rect image.Rectangle) color.RGBA {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return color.RGBA{}
	}

	var r, g, b, a uint64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			// RGBA 返回预乘 alpha 的 16 位分量
			cr, cg, cb, ca := img.At(x, y).RGBA()
			r += uint64(cr)
			g += uint64(cg)
			b += uint64(cb)
			a += uint64(ca)
		}
	}
	if a == 0 {
		return color.RGBA{}
	}

	n := uint64(rect.Dx() * rect.Dy())
	return color.RGBA{
		R: uint8(r * 0xff / a),
		G: uint8(g * 0xff / a),
		B: uint8(b * 0xff / a),
		A: uint8(a / n >> 8),
	}
}
