package matrix_test

import (
	"testing"

	"github.com/katalvlaran/diim/matrix"
)

// benchMatrix builds a diagonally dominant n×n Dense so every
// factorization in the benchmark succeeds.
func benchMatrix(n int) *matrix.Dense {
	m, _ := matrix.NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				_ = m.Set(i, j, float64(n))
			} else {
				_ = m.Set(i, j, 1.0/float64(1+i+j))
			}
		}
	}

	return m
}

func BenchmarkMul_64(b *testing.B) {
	m := benchMatrix(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Mul(m, m)
	}
}

func BenchmarkFactorize_64(b *testing.B) {
	m := benchMatrix(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Factorize(m)
	}
}

func BenchmarkExpm_32(b *testing.B) {
	m := benchMatrix(32)
	scaled, _ := matrix.Scale(m, 1.0/64.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Expm(scaled)
	}
}
