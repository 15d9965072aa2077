// Package engine implements the factored representation of a simplex
// basis matrix: a partial-pivoting LU base plus a chain of eta updates,
// and the forward/backward transformation solves that work through that
// representation without ever materializing the basis inverse.
package engine

import (
	"container/list"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Engine holds the factored representation of an m x m basis matrix B and
// the scratch state needed to solve against it. It is not safe for
// concurrent use - callers (the simplex driver) are expected to hold
// exclusive access for the duration of any call.
type Engine struct {
	m int

	b0 []float64 // row-major m*m, the base matrix
	u  []float64 // row-major m*m, upper-triangular after factorize

	lp   *list.List  // of *LPElement, head = most recently constructed
	etas []EtaMatrix // chain order: index 0 is oldest

	factorizationEnabled bool

	cfg Config
	log *zap.SugaredLogger

	w    []float64 // scratch right-hand-side buffer, length m
	lcol []float64 // scratch elimination-column buffer, length m
}

// New constructs an engine of dimension m with B0 = I and empty records. A
// zero-value Config resolves to DefaultRefactorThreshold and
// DefaultTolerance with logging disabled.
func New(m int, cfg Config) (*Engine, error) {
	if m <= 0 {
		return nil, errors.Wrapf(ErrAllocation, "invalid dimension %d", m)
	}

	e := &Engine{
		m:                    m,
		b0:                   make([]float64, m*m),
		u:                    make([]float64, m*m),
		lp:                   list.New(),
		factorizationEnabled: true,
		cfg:                  cfg.withDefaults(),
		log:                  zap.NewNop().Sugar(),
		w:                    make([]float64, m),
		lcol:                 make([]float64, m),
	}
	for i := 0; i < m; i++ {
		e.b0[i*m+i] = 1
	}
	return e, nil
}

// SetLogger installs l as the engine's structured logger. A nil l is
// ignored, leaving the previously installed logger (a no-op logger by
// default) in place.
func (e *Engine) SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		e.log = l
	}
}

// M returns the engine's dimension.
func (e *Engine) M() int { return e.m }

// B0 returns the engine's base matrix as a stable, row-major reference
// valid until the next mutating call. Callers must not mutate it.
func (e *Engine) B0() []float64 { return e.b0 }

// U returns the current upper-triangular factor as a stable, row-major
// reference valid until the next mutating call. Callers must not mutate
// it.
func (e *Engine) U() []float64 { return e.u }

// LP returns the LP record for read-only inspection. Head is the most
// recently constructed element; see ForwardTransform, BackwardTransform
// and InvertB0 for the traversal order each of them uses.
func (e *Engine) LP() *list.List { return e.lp }

// Etas returns the eta chain in construction (oldest-first) order.
// Callers must not mutate the returned slice's V fields.
func (e *Engine) Etas() []EtaMatrix { return e.etas }

// FactorizationEnabled reports whether PushEta may trigger an automatic
// condense-and-refactor.
func (e *Engine) FactorizationEnabled() bool { return e.factorizationEnabled }

// ToggleFactorization enables or disables automatic condense-and-refactor
// on eta-chain overflow.
func (e *Engine) ToggleFactorization(enabled bool) { e.factorizationEnabled = enabled }

// PushEta appends E(col, v) to the eta chain. If factorization is enabled
// and the chain now exceeds the configured refactorization threshold, the
// chain is condensed into B0 and B0 is re-factorized.
func (e *Engine) PushEta(col int, v []float64) error {
	if col < 0 || col >= e.m {
		panic(fmt.Sprintf("engine: eta column %d out of range [0,%d)", col, e.m))
	}
	if len(v) != e.m {
		panic(fmt.Sprintf("engine: eta column length %d does not match dimension %d", len(v), e.m))
	}
	if v[col] == 0 {
		panic(fmt.Sprintf("engine: eta pivot entry v[%d] must be non-zero", col))
	}

	e.etas = append(e.etas, newEtaMatrix(col, v))
	e.log.Debugw("pushed eta", "col", col, "chainLen", len(e.etas), "threshold", e.cfg.RefactorThreshold)

	if e.factorizationEnabled && len(e.etas) > e.cfg.RefactorThreshold {
		return e.condenseAndRefactor()
	}
	return nil
}
