package analysis

import (
	"fmt"
	"math"

	"github.com/edp1096/sparse"

	"github.com/aurobinda824/qcsys/pkg/device"
	"github.com/aurobinda824/qcsys/pkg/qmat"
)

const (
	inverseIterMax = 50
	inverseIterTol = 1e-12
)

// GroundState refines the lowest eigenpair of the device Hamiltonian by
// inverse iteration: a sparse LU of (H - shift*I) is factored once and
// reused for every solve. The shift must lie below the first excited
// level and not coincide with an eigenvalue; a coarse eigenvalue from
// Diagonalize minus a fraction of f01 is a good choice.
//
// Both device Hamiltonians are real and banded in their working bases,
// which is what the sparse factorization is built for. A Hamiltonian with
// non-negligible imaginary entries is rejected.
func GroundState(dev device.Device, shift float64) (float64, []float64, error) {
	hc, err := deviceHamiltonian(dev)
	if err != nil {
		return 0, nil, err
	}
	if im := qmat.MaxImag(hc); im > qmat.HermTol {
		return 0, nil, fmt.Errorf("analysis: device %s: Hamiltonian has imaginary entries (max %g)", dev.Label(), im)
	}
	h := qmat.Real(hc)
	n, _ := h.Dims()

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
	a, err := sparse.Create(int64(n), config)
	if err != nil {
		return 0, nil, fmt.Errorf("analysis: sparse matrix creation failed: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.At(i, j)
			if i == j {
				v -= shift
			}
			if v != 0 {
				a.GetElement(int64(i+1), int64(j+1)).Real += v // 1-based indexing
			}
		}
	}
	if err := a.Factor(); err != nil {
		return 0, nil, fmt.Errorf("analysis: factorization of (H - %g*I) failed: %w", shift, err)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / math.Sqrt(float64(n))
	}

	lambda := math.Inf(1)
	for iter := 0; iter < inverseIterMax; iter++ {
		rhs := make([]float64, n+1)
		copy(rhs[1:], x)
		sol, err := a.Solve(rhs)
		if err != nil {
			return 0, nil, fmt.Errorf("analysis: inverse iteration solve failed: %w", err)
		}

		var nrm float64
		for i := 0; i < n; i++ {
			nrm += sol[i+1] * sol[i+1]
		}
		nrm = math.Sqrt(nrm)
		if nrm == 0 {
			return 0, nil, fmt.Errorf("analysis: inverse iteration collapsed to the zero vector")
		}
		for i := 0; i < n; i++ {
			x[i] = sol[i+1] / nrm
		}

		// Rayleigh quotient x' H x
		var rq float64
		for i := 0; i < n; i++ {
			var hx float64
			for j := 0; j < n; j++ {
				hx += h.At(i, j) * x[j]
			}
			rq += x[i] * hx
		}
		if math.Abs(rq-lambda) < inverseIterTol*math.Max(1, math.Abs(rq)) {
			return rq, x, nil
		}
		lambda = rq
	}
	return lambda, x, fmt.Errorf("analysis: inverse iteration did not converge in %d iterations", inverseIterMax)
}
