package engine

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// SetB0 replaces the base matrix wholesale and LU-factorizes it. matrix
// must be m*m, row-major.
func (e *Engine) SetB0(matrix []float64) error {
	if len(matrix) != e.m*e.m {
		panic(fmt.Sprintf("engine: SetB0 expects %d elements, got %d", e.m*e.m, len(matrix)))
	}
	copy(e.b0, matrix)
	return e.factorize(e.b0)
}

// condenseAndRefactor folds the eta chain into B0 and re-factorizes it,
// discarding the prior LP/U record.
func (e *Engine) condenseAndRefactor() error {
	e.condenseEtas()
	return e.factorize(e.b0)
}

// condenseEtas applies each eta in chain order to B0 in place, replacing
// column Col with the linear combination B0*V, then empties the chain and
// clears the LP/U record.
func (e *Engine) condenseEtas() {
	m := e.m
	folded := len(e.etas)

	for _, et := range e.etas {
		col := et.Col
		for i := 0; i < m; i++ {
			sum := 0.0
			for j := 0; j < m; j++ {
				sum += e.b0[i*m+j] * et.V[j]
			}
			e.b0[i*m+col] = e.snap(sum)
		}
	}

	e.etas = e.etas[:0]
	e.clearLPU()

	if folded > 0 {
		e.log.Infow("condensed eta chain", "folded", folded)
	}
}

// clearLPU empties the LP record and zeros U.
func (e *Engine) clearLPU() {
	e.lp.Init()
	for i := range e.u {
		e.u[i] = 0
	}
}

// factorize computes a partial-pivoting LU factorization of matrix,
// leaving U upper-triangular and the LP record populated so that the
// product of its elements read head-to-tail, Lm*Pm*...*L1*P1, times B0
// equals U (acting on B0, the elements apply tail-to-head).
func (e *Engine) factorize(matrix []float64) error {
	m := e.m
	e.clearLPU()
	copy(e.u, matrix)

	for i := 0; i < m; i++ {
		largest := math.Abs(e.u[i*m+i])
		best := i
		for j := i + 1; j < m; j++ {
			contender := math.Abs(e.u[j*m+i])
			if contender > largest {
				largest = contender
				best = j
			}
		}

		if largest < e.cfg.Tolerance {
			e.log.Errorw("no pivot available", "column", i, "largest", largest)
			return errors.Wrapf(ErrNoPivot, "column %d", i)
		}
		e.log.Debugw("pivot chosen", "column", i, "row", best, "magnitude", largest)

		if best != i {
			e.swapRows(e.u, i, best)
			e.lp.PushFront(swapElement(i, best))
		}

		div := e.u[i*m+i]
		for k := range e.lcol {
			e.lcol[k] = 0
		}
		e.lcol[i] = 1 / div
		for j := i + 1; j < m; j++ {
			e.lcol[j] = -e.u[j*m+i] / div
		}

		elim := eliminationElement(i, e.lcol)
		e.lp.PushFront(elim)
		e.applyElimination(i, elim.V)
	}
	return nil
}

// swapRows exchanges rows r1 and r2 of an m*m row-major matrix owned by
// the engine (U, or a caller-provided result buffer of the same size).
func (e *Engine) swapRows(mat []float64, r1, r2 int) {
	m := e.m
	for k := 0; k < m; k++ {
		mat[r1*m+k], mat[r2*m+k] = mat[r2*m+k], mat[r1*m+k]
	}
}

// applyElimination performs the Gaussian elimination step of L(col, v) on
// U in place. The pivot row is updated last, since every row update above
// it reads the unmodified pivot row.
func (e *Engine) applyElimination(col int, v []float64) {
	m := e.m
	for r := col + 1; r < m; r++ {
		for k := col + 1; k < m; k++ {
			e.u[r*m+k] = e.snap(e.u[r*m+k] + v[r]*e.u[col*m+k])
		}
		e.u[r*m+col] = 0
	}

	for k := col + 1; k < m; k++ {
		e.u[col*m+k] = e.snap(e.u[col*m+k] * v[col])
	}
	e.u[col*m+col] = 1
}
