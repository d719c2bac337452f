// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
)

const benchN = 128

func BenchmarkAdd_Dense(b *testing.B) {
	x := MustRows(b, seqRows(benchN, benchN))
	y := MustRows(b, seqRows(benchN, benchN))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdd_Fallback(b *testing.B) {
	x := MustRows(b, seqRows(benchN, benchN))
	y := MustRows(b, seqRows(benchN, benchN))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(hide{x}, hide{y}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScale_Dense(b *testing.B) {
	x := MustRows(b, seqRows(benchN, benchN))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Scale(x, 1.5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul_Dense(b *testing.B) {
	x := MustRows(b, seqRows(benchN/2, benchN/2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, x); err != nil {
			b.Fatal(err)
		}
	}
}
