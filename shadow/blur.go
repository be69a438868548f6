package shadow

import "shadowgen/parallel"

// blurInPlace applies a two-pass separable Gaussian blur to a row-major
// RGBA float32 raster. Sample indices outside the raster clamp to the
// nearest edge pixel. No-op when radius is 0 or the raster is empty.
//
// The horizontal pass reads buf and writes a pooled scratch raster; the
// vertical pass reads scratch and writes buf. Each pass fans its rows out
// across workers, and the passes are strictly sequenced because the second
// needs the complete output of the first.
func blurInPlace(buf []float32, width, height, radius int) {
	if radius == 0 || width <= 0 || height <= 0 {
		return
	}

	kernel := Kernel(radius)

	scratch := getBuffer(width * height * 4)
	defer putBuffer(scratch)

	parallel.For(workers(), height, func(yMin, yMax int) {
		blurRows(buf, scratch, width, yMin, yMax, radius, kernel)
	})
	parallel.For(workers(), height, func(yMin, yMax int) {
		blurColumns(scratch, buf, width, height, yMin, yMax, radius, kernel)
	})
}

// blurRows convolves rows yMin..yMax of src horizontally into dst.
func blurRows(src, dst []float32, width, yMin, yMax, radius int, kernel []float32) {
	for y := yMin; y < yMax; y++ {
		row := y * width * 4
		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for k := -radius; k <= radius; k++ {
				sx := x + k
				if sx < 0 {
					sx = 0
				} else if sx >= width {
					sx = width - 1
				}

				w := kernel[k+radius]
				i := row + sx*4
				r += src[i] * w
				g += src[i+1] * w
				b += src[i+2] * w
				a += src[i+3] * w
			}

			i := row + x*4
			dst[i] = r
			dst[i+1] = g
			dst[i+2] = b
			dst[i+3] = a
		}
	}
}

// blurColumns convolves rows yMin..yMax of src vertically into dst.
func blurColumns(src, dst []float32, width, height, yMin, yMax, radius int, kernel []float32) {
	for y := yMin; y < yMax; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for k := -radius; k <= radius; k++ {
				sy := y + k
				if sy < 0 {
					sy = 0
				} else if sy >= height {
					sy = height - 1
				}

				w := kernel[k+radius]
				i := (sy*width + x) * 4
				r += src[i] * w
				g += src[i+1] * w
				b += src[i+2] * w
				a += src[i+3] * w
			}

			i := (y*width + x) * 4
			dst[i] = r
			dst[i+1] = g
			dst[i+2] = b
			dst[i+3] = a
		}
	}
}
