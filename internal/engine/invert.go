package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvertB0 computes B0^-1 into result (an m*m row-major buffer supplied by
// the caller). It requires the eta chain to be empty - inverting through a
// pending eta chain is a caller bug.
func (e *Engine) InvertB0(result []float64) error {
	if len(e.etas) != 0 {
		return errors.WithStack(ErrCantInvert)
	}
	if len(result) != e.m*e.m {
		panic(fmt.Sprintf("engine: InvertB0 expects %d elements, got %d", e.m*e.m, len(result)))
	}

	m := e.m
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				result[i*m+j] = 1
			} else {
				result[i*m+j] = 0
			}
		}
	}

	if e.lp.Len() == 0 {
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				want := 0.0
				if i == j {
					want = 1
				}
				if e.b0[i*m+j] != want {
					panic("engine: B0 must be the identity matrix when LP is empty")
				}
			}
		}
		return nil
	}

	// Left-multiply result by LP, replaying LP tail-to-head (the
	// same traversal ForwardTransform uses) and reusing the elimination
	// action of applyElimination against result's rows instead of U's.
	for el := e.lp.Back(); el != nil; el = el.Prev() {
		lp := el.Value.(*LPElement)
		if lp.Swap {
			e.swapRows(result, lp.I, lp.J)
			continue
		}

		col := lp.Col
		for row := col + 1; row < m; row++ {
			for k := 0; k < m; k++ {
				result[row*m+k] = e.snap(result[row*m+k] + lp.V[row]*result[col*m+k])
			}
		}
		for k := 0; k < m; k++ {
			result[col*m+k] = e.snap(result[col*m+k] * lp.V[col])
		}
	}

	// Eliminate U's strict upper triangle from result's rows, which
	// applies U^-1 on top of the LP already folded in, giving
	// B0^-1 = U^-1 * LP.
	for col := m - 1; col > 0; col-- {
		for row := col - 1; row >= 0; row-- {
			uElem := e.u[row*m+col]
			if uElem == 0 {
				continue
			}
			for k := 0; k < m; k++ {
				result[row*m+k] = e.snap(result[row*m+k] - uElem*result[col*m+k])
			}
		}
	}

	return nil
}

// StoreFactorization condenses this engine's eta chain, re-factorizes,
// and copies the resulting B0 into dst, which re-factorizes from it. dst
// must share this engine's dimension and have an empty eta chain.
func (e *Engine) StoreFactorization(dst *Engine) error {
	if dst.m != e.m {
		panic(fmt.Sprintf("engine: StoreFactorization dimension mismatch: %d vs %d", e.m, dst.m))
	}
	if len(dst.etas) != 0 {
		panic("engine: StoreFactorization destination has pending etas")
	}

	if err := e.condenseAndRefactor(); err != nil {
		return err
	}
	return dst.SetB0(e.b0)
}

// RestoreFactorization drops this engine's etas and LP/U record, adopts
// src's B0, and LU-factorizes it. src must share this engine's dimension
// and have an empty eta chain.
func (e *Engine) RestoreFactorization(src *Engine) error {
	if src.m != e.m {
		panic(fmt.Sprintf("engine: RestoreFactorization dimension mismatch: %d vs %d", e.m, src.m))
	}
	if len(src.etas) != 0 {
		panic("engine: RestoreFactorization source has pending etas")
	}

	e.etas = e.etas[:0]
	e.clearLPU()
	return e.SetB0(src.b0)
}
