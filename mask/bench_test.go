package mask_test

import (
	"testing"

	"github.com/katalvlaran/lensgrid/mask"
)

// BenchmarkBlurringMask measures a fresh 21×21 blurring region around a
// 3" circular mask at 0.05"/pixel.
// Complexity: O(W×H×kr×kc)
func BenchmarkBlurringMask(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m, err := mask.Circular([2]float64{8, 8}, 0.05, 3)
		if err != nil {
			b.Fatalf("setup Circular failed: %v", err)
		}
		if _, err := m.BlurringMask(21, 21); err != nil {
			b.Fatalf("BlurringMask failed: %v", err)
		}
	}
}

// BenchmarkImageToSparse measures the ring search at stride 4.
func BenchmarkImageToSparse(b *testing.B) {
	base, err := mask.Circular([2]float64{8, 8}, 0.05, 3)
	if err != nil {
		b.Fatalf("setup Circular failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := mask.NewSparse(base, 4)
		if err != nil {
			b.Fatalf("NewSparse failed: %v", err)
		}
		if _, err := s.ImageToSparse(); err != nil {
			b.Fatalf("ImageToSparse failed: %v", err)
		}
	}
}
