// Package qmat provides the operator algebra used by the device models:
// truncated ladder-operator builders, Hermitian matrix functions and a
// Hermitian eigensolver, all on top of gonum complex dense matrices.
package qmat

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the n x n identity operator.
func Identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Destroy returns the truncated annihilation operator: sqrt(k) on the
// first superdiagonal.
func Destroy(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for k := 1; k < n; k++ {
		m.Set(k-1, k, complex(math.Sqrt(float64(k)), 0))
	}
	return m
}

// Create returns the truncated creation operator, the adjoint of Destroy.
func Create(n int) *mat.CDense {
	return Dagger(Destroy(n))
}

// Diag returns a diagonal operator from the given entries.
func Diag(vals []complex128) *mat.CDense {
	n := len(vals)
	m := mat.NewCDense(n, n, nil)
	for i, v := range vals {
		m.Set(i, i, v)
	}
	return m
}

// Shift returns an n x n operator with value v along the k-th diagonal
// (k > 0 above the main diagonal, k < 0 below).
func Shift(n, k int, v complex128) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		j := i + k
		if j >= 0 && j < n {
			m.Set(i, j, v)
		}
	}
	return m
}

func dims(a *mat.CDense) int {
	r, c := a.Dims()
	if r != c {
		panic(fmt.Sprintf("qmat: operator is %dx%d, not square", r, c))
	}
	return r
}

func sameDims(a, b *mat.CDense) int {
	n := dims(a)
	if m := dims(b); m != n {
		panic(fmt.Sprintf("qmat: dimension mismatch %d vs %d", n, m))
	}
	return n
}

// Add returns a + b.
func Add(a, b *mat.CDense) *mat.CDense {
	n := sameDims(a, b)
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, a.At(i, j)+b.At(i, j))
		}
	}
	return m
}

// Sub returns a - b.
func Sub(a, b *mat.CDense) *mat.CDense {
	n := sameDims(a, b)
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, a.At(i, j)-b.At(i, j))
		}
	}
	return m
}

// Scale returns s * a.
func Scale(s complex128, a *mat.CDense) *mat.CDense {
	n := dims(a)
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, s*a.At(i, j))
		}
	}
	return m
}

// Mul returns the operator product a * b.
func Mul(a, b *mat.CDense) *mat.CDense {
	n := sameDims(a, b)
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			m.Set(i, j, s)
		}
	}
	return m
}

// Dagger returns the conjugate transpose of a.
func Dagger(a *mat.CDense) *mat.CDense {
	n := dims(a)
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, cmplx.Conj(a.At(j, i)))
		}
	}
	return m
}

// Commutator returns [a, b] = a*b - b*a.
func Commutator(a, b *mat.CDense) *mat.CDense {
	return Sub(Mul(a, b), Mul(b, a))
}

// IsHermitian reports whether a equals its conjugate transpose within tol.
func IsHermitian(a *mat.CDense, tol float64) bool {
	n := dims(a)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(a.At(i, j)-cmplx.Conj(a.At(j, i))) > tol {
				return false
			}
		}
	}
	return true
}

// Real extracts the real part of a into a gonum dense matrix.
func Real(a *mat.CDense) *mat.Dense {
	n := dims(a)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, real(a.At(i, j)))
		}
	}
	return m
}

// MaxImag returns the largest absolute imaginary part of any entry of a.
func MaxImag(a *mat.CDense) float64 {
	n := dims(a)
	max := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if im := math.Abs(imag(a.At(i, j))); im > max {
				max = im
			}
		}
	}
	return max
}

// Project returns V† a V where V holds the first ncols columns of vecs.
// The result is ncols x ncols.
func Project(a, vecs *mat.CDense, ncols int) *mat.CDense {
	n := sameDims(a, vecs)
	if ncols < 0 || ncols > n {
		panic(fmt.Sprintf("qmat: projection onto %d columns of a %d-column basis", ncols, n))
	}
	// t = a * V
	t := mat.NewCDense(n, ncols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < ncols; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += a.At(i, k) * vecs.At(k, j)
			}
			t.Set(i, j, s)
		}
	}
	out := mat.NewCDense(ncols, ncols, nil)
	for i := 0; i < ncols; i++ {
		for j := 0; j < ncols; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += cmplx.Conj(vecs.At(k, i)) * t.At(k, j)
			}
			out.Set(i, j, s)
		}
	}
	return out
}
