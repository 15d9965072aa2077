package engine

import "fmt"

// ForwardTransform solves B*x = y, where B = B0 * E1 * ... * En and
// (Lm*Pm*...*L1*P1) * B0 = U. It multiplies through on the left by LP,
// eliminates U via back-substitution, then eliminates the eta chain in
// chain order.
func (e *Engine) ForwardTransform(y []float64) []float64 {
	if len(y) != e.m {
		panic(fmt.Sprintf("engine: ForwardTransform expects length %d, got %d", e.m, len(y)))
	}

	x := make([]float64, e.m)
	if e.lp.Len() == 0 && len(e.etas) == 0 {
		copy(x, y)
		return x
	}

	copy(e.w, y)

	// Apply LP to w walking tail-to-head, i.e. in the order the elements
	// were constructed (P/L for column 0 first), which left-multiplies w
	// by L1*P1, then L2*P2, and so on.
	for el := e.lp.Back(); el != nil; el = el.Prev() {
		lp := el.Value.(*LPElement)
		if lp.Swap {
			e.w[lp.I], e.w[lp.J] = e.w[lp.J], e.w[lp.I]
		} else {
			e.applyLeft(lp.Col, lp.V, e.w)
		}
	}

	if e.lp.Len() > 0 {
		m := e.m
		x[m-1] = e.w[m-1]
		for i := m - 2; i >= 0; i-- {
			sum := 0.0
			for j := m - 1; j > i; j-- {
				sum += e.u[i*m+j] * x[j]
			}
			x[i] = e.snap(e.w[i] - sum)
		}
		copy(e.w, x)
	}

	for _, et := range e.etas {
		c := et.Col
		x[c] = e.snap(e.w[c] / et.V[c])
		for i := c + 1; i < e.m; i++ {
			x[i] = e.snap(e.w[i] - x[c]*et.V[i])
		}
		for i := c - 1; i >= 0; i-- {
			x[i] = e.snap(e.w[i] - x[c]*et.V[i])
		}
		copy(e.w, x)
	}

	return x
}

// BackwardTransform solves x*B = y. It eliminates the eta chain from the
// right first (in reverse chain order), then eliminates U via forward
// substitution, then unwinds LP on the right walking head-to-tail (the
// reverse of construction order).
func (e *Engine) BackwardTransform(y []float64) []float64 {
	if len(y) != e.m {
		panic(fmt.Sprintf("engine: BackwardTransform expects length %d, got %d", e.m, len(y)))
	}

	x := make([]float64, e.m)
	if e.lp.Len() == 0 && len(e.etas) == 0 {
		copy(x, y)
		return x
	}

	copy(e.w, y)

	for i := len(e.etas) - 1; i >= 0; i-- {
		et := e.etas[i]
		copy(x, e.w)

		c := et.Col
		sum := e.w[c]
		for k := 0; k < e.m; k++ {
			if k != c {
				sum -= x[k] * et.V[k]
			}
		}
		x[c] = e.snap(sum / et.V[c])
		copy(e.w, x)
	}

	if e.lp.Len() > 0 {
		m := e.m
		x[0] = e.w[0]
		for i := 1; i < m; i++ {
			sum := 0.0
			for j := 0; j < i; j++ {
				sum += e.u[j*m+i] * x[j]
			}
			x[i] = e.snap(e.w[i] - sum)
		}
	}

	for el := e.lp.Front(); el != nil; el = el.Next() {
		lp := el.Value.(*LPElement)
		if lp.Swap {
			x[lp.I], x[lp.J] = x[lp.J], x[lp.I]
		} else {
			e.applyRight(lp.Col, lp.V, x)
		}
	}

	return x
}

// applyLeft left-multiplies the vector xv by the elimination eta L(col, v)
// in place: xv := L*xv.
func (e *Engine) applyLeft(col int, v, xv []float64) {
	xc := xv[col]
	for i := 0; i < e.m; i++ {
		if i == col {
			xv[i] = e.snap(xc * v[col])
		} else {
			xv[i] = e.snap(xv[i] + xc*v[i])
		}
	}
}

// applyRight right-multiplies the row vector xv by the elimination eta
// L(col, v) in place: xv := xv*L.
func (e *Engine) applyRight(col int, v, xv []float64) {
	sum := 0.0
	for i := 0; i < e.m; i++ {
		sum += xv[i] * v[i]
	}
	xv[col] = e.snap(sum)
}
