// Package shadow generates drop-shadow rasters: a padded, blurred,
// colorized silhouette of a source image's alpha channel, suitable for
// compositing under 2D sprites.
package shadow

import "shadowgen/parallel"

// Color is an RGBA color with float32 components nominally in [0, 1].
// Values outside that range are not validated; only the final byte
// conversion clamps.
type Color struct {
	R, G, B, A float32
}

// MaxRadius is the hard upper bound on the blur radius.
const MaxRadius = 512

// workerCount caps the fan-out of the data-parallel stages.
// Zero means one worker per available CPU.
var workerCount int

// SetWorkers caps the number of goroutines used by the parallel blur and
// conversion stages. Call before Generate; zero restores the default.
func SetWorkers(n int) {
	workerCount = n
}

func workers() int {
	return workerCount
}

// Generate builds the drop-shadow raster for a width x height straight-alpha
// RGBA source. The result is padded by the clamped radius on every side,
// filled with col attenuated by each source pixel's alpha, blurred, and
// converted back to 8-bit channels. Returns the byte raster and its
// dimensions.
//
// src must hold at least width*height*4 bytes in row-major RGBA order; it is
// only read. The returned raster is freshly allocated and owned by the
// caller.
func Generate(src []uint8, width, height int, col Color, radius int) ([]uint8, int, int) {
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}

	radius = clampRadius(radius)
	outWidth := width + 2*radius
	outHeight := height + 2*radius

	out := make([]uint8, outWidth*outHeight*4)
	if col.A <= 0 {
		// A fully transparent shadow color blurs to nothing; the zeroed
		// raster is byte-identical to running the full pipeline.
		return out, outWidth, outHeight
	}

	buf := getBuffer(outWidth * outHeight * 4)
	defer putBuffer(buf)

	clearPadding(buf, outWidth, outHeight, radius)

	for y := 0; y < height; y++ {
		srcRow := y * width * 4
		dstRow := ((y+radius)*outWidth + radius) * 4
		for x := 0; x < width; x++ {
			i := dstRow + x*4
			alpha := float32(src[srcRow+x*4+3]) / 255
			if alpha <= 0 {
				buf[i] = 0
				buf[i+1] = 0
				buf[i+2] = 0
				buf[i+3] = 0
				continue
			}

			buf[i] = col.R
			buf[i+1] = col.G
			buf[i+2] = col.B
			buf[i+3] = col.A * alpha
		}
	}

	blurInPlace(buf, outWidth, outHeight, radius)

	parallel.For(workers(), outWidth*outHeight, func(pMin, pMax int) {
		for i := pMin * 4; i < pMax*4; i++ {
			out[i] = toByte(buf[i])
		}
	})

	return out, outWidth, outHeight
}

func clampRadius(radius int) int {
	if radius < 0 {
		return 0
	}
	if radius > MaxRadius {
		return MaxRadius
	}
	return radius
}

// clearPadding zeroes the radius-wide border ring of a pooled raster, which
// otherwise carries stale contents.
func clearPadding(buf []float32, width, height, radius int) {
	if radius == 0 {
		return
	}

	clear(buf[:width*radius*4])
	clear(buf[(height-radius)*width*4 : height*width*4])
	for y := radius; y < height-radius; y++ {
		row := y * width * 4
		clear(buf[row : row+radius*4])
		clear(buf[row+(width-radius)*4 : row+width*4])
	}
}

// toByte converts a float component to a byte: clamp to [0, 1], scale by
// 255, round half up. 0.5 maps to 128.
func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
