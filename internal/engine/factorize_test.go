package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simplexcore/basisfact/internal/oracle"
)

func TestSetB0_Diagonal(t *testing.T) {
	// m=3, setB0(diag(2,3,4)); FTRAN([2,6,12]) -> [1,2,3]; BTRAN([2,6,12]) -> [1,2,3].
	e, err := New(3, Config{})
	require.NoError(t, err)

	require.NoError(t, e.SetB0([]float64{
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	}))

	want := []float64{1, 2, 3}
	y := []float64{2, 6, 12}

	x := e.ForwardTransform(y)
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Errorf("FTRAN x[%d] = %v, want %v", i, x[i], want[i])
		}
	}

	x = e.BackwardTransform(y)
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Errorf("BTRAN x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSetB0_ForcesRowSwap(t *testing.T) {
	// m=2, setB0([[0,1],[1,0]]) forces a pivot swap; FTRAN([5,7]) -> [7,5].
	e, err := New(2, Config{})
	require.NoError(t, err)

	require.NoError(t, e.SetB0([]float64{0, 1, 1, 0}))

	foundSwap := false
	for el := e.LP().Front(); el != nil; el = el.Next() {
		if el.Value.(*LPElement).Swap {
			foundSwap = true
		}
	}
	if !foundSwap {
		t.Errorf("expected factorization to record a row swap")
	}

	x := e.ForwardTransform([]float64{5, 7})
	want := []float64{7, 5}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSetB0_Singular_NoPivot(t *testing.T) {
	e, err := New(2, Config{})
	require.NoError(t, err)

	err = e.SetB0([]float64{1, 2, 2, 4})
	require.Error(t, err)
	if !errors.Is(err, ErrNoPivot) {
		t.Errorf("expected ErrNoPivot, got %v", err)
	}
}

func TestSetB0_FixedNonSingular_Residual(t *testing.T) {
	m := 3
	M := []float64{
		2, 1, 1,
		4, -6, 0,
		-2, 7, 2,
	}
	e, err := New(m, Config{})
	require.NoError(t, err)
	require.NoError(t, e.SetB0(M))

	y := []float64{9, -6, 1}
	x := e.ForwardTransform(y)

	got := matVec(M, x, m)
	for i := range y {
		if math.Abs(got[i]-y[i]) > 1e-9 {
			t.Errorf("M*x[%d] = %v, want %v (residual check failed)", i, got[i], y[i])
		}
	}
}

func TestForwardTransform_MatchesOracleSolve(t *testing.T) {
	m := 3
	M := []float64{
		2, 1, 1,
		4, -6, 0,
		-2, 7, 2,
	}
	e, err := New(m, Config{})
	require.NoError(t, err)
	require.NoError(t, e.SetB0(M))

	y := []float64{9, -6, 1}
	want := oracle.Solve(M, y, m)
	got := e.ForwardTransform(y)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("FTRAN[%d] = %v, want %v (oracle.Solve)", i, got[i], want[i])
		}
	}
}

func matVec(M, x []float64, m int) []float64 {
	out := make([]float64, m)
	for i := 0; i < m; i++ {
		sum := 0.0
		for j := 0; j < m; j++ {
			sum += M[i*m+j] * x[j]
		}
		out[i] = sum
	}
	return out
}
