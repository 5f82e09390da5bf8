package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/housing/pkg/errors"
)

// solveQR solves the ridge problem on the active columns in closed form.
//
// Minimizing ‖t − Zw‖² + nλ‖w‖² is ordinary least squares on the augmented
// system
//
//	[     Z     ] w ≈ [ t ]
//	[ √(nλ) · I ]     [ 0 ]
//
// which is solved with a QR factorization instead of forming ZᵀZ.
func solveQR(prob *problem) (result, error) {
	active := make([]int, 0, prob.p)
	for j, ok := range prob.active {
		if ok {
			active = append(active, j)
		}
	}

	res := result{weights: make([]float64, prob.p), iterations: 1, converged: true}
	if len(active) == 0 {
		res.objective = halfMeanSquare(prob.target)
		return res, nil
	}

	k := len(active)
	A := mat.NewDense(prob.n+k, k, nil)
	for c, j := range active {
		for i, v := range prob.cols[j] {
			A.Set(i, c, v)
		}
		A.Set(prob.n+c, c, math.Sqrt(prob.penalty))
	}
	b := mat.NewVecDense(prob.n+k, nil)
	for i, v := range prob.target {
		b.SetVec(i, v)
	}

	var qr mat.QR
	qr.Factorize(A)

	var w mat.VecDense
	if err := qr.SolveVecTo(&w, false, b); err != nil {
		return result{}, errors.Wrap(err, "ridge QR solve (features may be collinear; use a positive L2)")
	}

	resid := make([]float64, prob.n)
	copy(resid, prob.target)
	sqNorm := 0.0
	for c, j := range active {
		wj := w.AtVec(c)
		res.weights[j] = wj
		sqNorm += wj * wj
		for i, v := range prob.cols[j] {
			resid[i] -= wj * v
		}
	}
	res.objective = halfMeanSquare(resid) + 0.5*prob.penalty/float64(prob.n)*sqNorm
	return res, nil
}

func halfMeanSquare(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}
	return 0.5 * s / float64(len(v))
}
