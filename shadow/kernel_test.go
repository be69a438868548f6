package shadow

import (
	"math"
	"testing"
)

func TestKernelZeroRadius(t *testing.T) {
	kernel := Kernel(0)

	if len(kernel) != 1 {
		t.Fatalf("Kernel(0) len = %d, want 1", len(kernel))
	}
	if kernel[0] != 1.0 {
		t.Errorf("Kernel(0)[0] = %v, want 1.0", kernel[0])
	}
}

func TestKernelNegativeRadius(t *testing.T) {
	kernel := Kernel(-5)

	if len(kernel) != 1 {
		t.Fatalf("Kernel(-5) len = %d, want 1", len(kernel))
	}
	if kernel[0] != 1.0 {
		t.Errorf("Kernel(-5)[0] = %v, want 1.0", kernel[0])
	}
}

func TestKernelLength(t *testing.T) {
	radii := []int{0, 1, 2, 10, 100, 512}

	for _, r := range radii {
		kernel := Kernel(r)
		if want := 2*r + 1; len(kernel) != want {
			t.Errorf("Kernel(%d) len = %d, want %d", r, len(kernel), want)
		}
	}
}

func TestKernelNormalized(t *testing.T) {
	radii := []int{1, 2, 3, 5, 10, 50, 512}

	for _, r := range radii {
		kernel := Kernel(r)

		sum := float64(0)
		for _, w := range kernel {
			if w < 0 {
				t.Errorf("Kernel(%d) has negative weight %v", r, w)
			}
			sum += float64(w)
		}

		if math.Abs(sum-1.0) > 1e-5 {
			t.Errorf("Kernel(%d) sum = %v, want ~1.0", r, sum)
		}
	}
}

func TestKernelSymmetric(t *testing.T) {
	for _, r := range []int{1, 5, 16} {
		kernel := Kernel(r)
		n := len(kernel)

		for i := 0; i < n/2; i++ {
			j := n - 1 - i
			if kernel[i] != kernel[j] {
				t.Errorf("Kernel(%d)[%d] = %v != [%d] = %v", r, i, kernel[i], j, kernel[j])
			}
		}
	}
}

func TestKernelPeakAtCenter(t *testing.T) {
	kernel := Kernel(7)
	center := len(kernel) / 2

	for i, w := range kernel {
		if i != center && w >= kernel[center] {
			t.Errorf("kernel[%d] = %v >= center %v", i, w, kernel[center])
		}
	}
}

func TestKernelCachedIdempotent(t *testing.T) {
	k1 := Kernel(5)
	k2 := Kernel(5)

	if len(k1) != len(k2) {
		t.Fatalf("cached kernel len mismatch: %d != %d", len(k1), len(k2))
	}
	for i := range k1 {
		if k1[i] != k2[i] {
			t.Errorf("cached kernel[%d] mismatch: %v != %v", i, k1[i], k2[i])
		}
	}
}

func TestKernelRecomputeAfterRadiusChange(t *testing.T) {
	Kernel(5)
	Kernel(9) // evicts the single slot

	got := Kernel(5)
	want := computeKernel(5)

	if len(got) != len(want) {
		t.Fatalf("recomputed kernel len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("recomputed kernel[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
