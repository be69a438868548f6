package generate

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// decodeSource reads an image file and returns its pixels as a row-major
// straight-alpha RGBA byte raster plus dimensions.
func decodeSource(path string) ([]uint8, int, int, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("could not open source image %q: %w", path, err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			slog.Error("could not close source image", "name", path, "error", closeErr)
		}
	}()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("could not decode source image %q: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if nrgba, ok := img.(*image.NRGBA); ok && bounds.Min == (image.Point{}) && nrgba.Stride == width*4 {
		return nrgba.Pix, width, height, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return nrgba.Pix, width, height, nil
}

// savePNG encodes a straight-alpha RGBA raster as PNG. The file is written
// to a temporary name first and renamed into place only after a successful
// encode, so a failed write never leaves a truncated destination.
func savePNG(pix []uint8, width, height int, destPath string) (err error) {
	img := &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	outFile, err := os.CreateTemp(filepath.Dir(destPath), filepath.Base(destPath))
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destPath, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destPath, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destPath, defErr)
		}

		if !canRename || err != nil {
			if defErr := os.Remove(outFile.Name()); defErr != nil {
				slog.Error("could not remove temporary destination", "name", outFile.Name(), "error", defErr)
			}
			return
		}

		if defErr := os.Rename(outFile.Name(), destPath); defErr != nil {
			err = fmt.Errorf("could not rename destination file %q: %w", destPath, defErr)
		}
	}()

	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
		BufferPool:       pngPool,
	}
	if err = enc.Encode(outFile, img); err != nil {
		return fmt.Errorf("could not encode PNG destination %q: %w", destPath, err)
	}

	canRename = true
	return err
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
