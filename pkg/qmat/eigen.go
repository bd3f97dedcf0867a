package qmat

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// HermTol is the tolerance used when checking operators for Hermiticity
// before spectral operations.
const HermTol = 1e-9

// orthoTol rejects embedded eigenvector candidates that collapse onto the
// span of already accepted columns.
const orthoTol = 1e-8

// HermEigen diagonalizes a Hermitian operator. Eigenvalues are returned in
// ascending order with the matching eigenvectors as columns of vecs.
//
// gonum has no complex Hermitian driver, so the matrix A = X + iY is
// embedded as the 2n x 2n real symmetric matrix [[X, -Y], [Y, X]], whose
// spectrum is that of A with every eigenvalue doubled. The n complex
// eigenvectors are recovered from the 2n real ones by Gram-Schmidt over
// the complex field.
func HermEigen(a *mat.CDense) ([]float64, *mat.CDense, error) {
	n := dims(a)
	if !IsHermitian(a, HermTol) {
		return nil, nil, fmt.Errorf("qmat: eigensolve of non-Hermitian operator")
	}

	b := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			re := real(a.At(i, j))
			b.SetSym(i, j, re)
			b.SetSym(n+i, n+j, re)
		}
		for j := 0; j < n; j++ {
			b.SetSym(i, n+j, -imag(a.At(i, j)))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(b, true); !ok {
		return nil, nil, fmt.Errorf("qmat: eigendecomposition failed to converge")
	}
	evals := es.Values(nil)
	var evecs mat.Dense
	es.VectorsTo(&evecs)

	vals := make([]float64, 0, n)
	cols := make([][]complex128, 0, n)
	for k := 0; k < 2*n && len(cols) < n; k++ {
		z := make([]complex128, n)
		for i := 0; i < n; i++ {
			z[i] = complex(evecs.At(i, k), evecs.At(n+i, k))
		}
		for _, u := range cols {
			var d complex128
			for i := range u {
				d += cmplx.Conj(u[i]) * z[i]
			}
			for i := range z {
				z[i] -= d * u[i]
			}
		}
		var nrm float64
		for _, v := range z {
			nrm += real(v)*real(v) + imag(v)*imag(v)
		}
		nrm = math.Sqrt(nrm)
		if nrm < orthoTol {
			continue // same complex vector as an accepted one, up to phase
		}
		for i := range z {
			z[i] /= complex(nrm, 0)
		}
		cols = append(cols, z)
		vals = append(vals, evals[k])
	}
	if len(cols) != n {
		return nil, nil, fmt.Errorf("qmat: recovered %d of %d eigenvectors from embedding", len(cols), n)
	}

	vecs := mat.NewCDense(n, n, nil)
	for j, z := range cols {
		for i := 0; i < n; i++ {
			vecs.Set(i, j, z[i])
		}
	}
	return vals, vecs, nil
}

// matFunc applies f to the spectrum of a Hermitian operator:
// f(A) = V f(Λ) V†. Panics on a non-Hermitian argument since every caller
// builds its argument from Hermitian primitives.
func matFunc(a *mat.CDense, f func(float64) float64) *mat.CDense {
	vals, vecs, err := HermEigen(a)
	if err != nil {
		panic(fmt.Sprintf("qmat: matrix function: %v", err))
	}
	n := dims(a)
	out := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += vecs.At(i, k) * complex(f(vals[k]), 0) * cmplx.Conj(vecs.At(j, k))
			}
			out.Set(i, j, s)
		}
	}
	return out
}

// Cosm returns the matrix cosine of a Hermitian operator.
func Cosm(a *mat.CDense) *mat.CDense {
	return matFunc(a, math.Cos)
}

// Sinm returns the matrix sine of a Hermitian operator.
func Sinm(a *mat.CDense) *mat.CDense {
	return matFunc(a, math.Sin)
}
