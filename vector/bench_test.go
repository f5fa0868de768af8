package vector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/vector"
)

// benchLens are the vector lengths to benchmark.
var benchLens = []int{3, 1024, 65536}

// sinks to defeat dead-code elimination
var (
	sinkV vector.Vector[float64]
	sinkF float64
)

// randVector returns a deterministic pseudo-random vector of length n.
func randVector(n int, seed int64) vector.Vector[float64] {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return vector.New(data...)
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLens {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			u, v := randVector(n, 1), randVector(n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = u.Add(v)
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLens {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			u, v := randVector(n, 3), randVector(n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = u.Dot(v)
			}
		})
	}
}

func BenchmarkCross(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLens {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			u, v := randVector(n, 5), randVector(n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w, err := u.Cross(v)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = w
			}
		})
	}
}
