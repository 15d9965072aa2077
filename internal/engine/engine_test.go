package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_InvalidDimension(t *testing.T) {
	for _, m := range []int{0, -1, -10} {
		_, err := New(m, Config{})
		require.Error(t, err)
	}
}

func TestNew_IdentityBasis(t *testing.T) {
	e, err := New(3, Config{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if got := e.B0()[i*3+j]; got != want {
				t.Errorf("B0[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}
	if e.LP().Len() != 0 {
		t.Errorf("LP record should start empty, has %d elements", e.LP().Len())
	}
	if len(e.Etas()) != 0 {
		t.Errorf("eta chain should start empty, has %d elements", len(e.Etas()))
	}
	if !e.FactorizationEnabled() {
		t.Errorf("factorization should be enabled by default")
	}
}

func TestConstruction_IdentitySolves(t *testing.T) {
	for _, m := range []int{1, 2, 5} {
		e, err := New(m, Config{})
		require.NoError(t, err)

		y := make([]float64, m)
		for i := range y {
			y[i] = float64(i + 1)
		}

		x := e.ForwardTransform(y)
		for i := range y {
			if x[i] != y[i] {
				t.Errorf("m=%d: ForwardTransform(y)[%d] = %v, want %v", m, i, x[i], y[i])
			}
		}

		x = e.BackwardTransform(y)
		for i := range y {
			if x[i] != y[i] {
				t.Errorf("m=%d: BackwardTransform(y)[%d] = %v, want %v", m, i, x[i], y[i])
			}
		}
	}
}

func TestPushEta_Scenario(t *testing.T) {
	// m=3, B0 = I; pushEta(1, [0,2,0]); FTRAN([1,2,3]) -> [1,1,3].
	e, err := New(3, Config{})
	require.NoError(t, err)

	require.NoError(t, e.PushEta(1, []float64{0, 2, 0}))

	x := e.ForwardTransform([]float64{1, 2, 3})
	want := []float64{1, 1, 3}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestPushEta_OutOfRangeColumnPanics(t *testing.T) {
	e, err := New(3, Config{})
	require.NoError(t, err)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range column")
		}
	}()
	e.PushEta(5, []float64{1, 1, 1})
}

func TestPushEta_ZeroPivotPanics(t *testing.T) {
	e, err := New(3, Config{})
	require.NoError(t, err)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for zero pivot entry")
		}
	}()
	e.PushEta(1, []float64{1, 0, 1})
}

func TestToggleFactorization(t *testing.T) {
	e, err := New(2, Config{RefactorThreshold: 2})
	require.NoError(t, err)

	e.ToggleFactorization(false)
	for i := 0; i < 5; i++ {
		require.NoError(t, e.PushEta(0, []float64{1, 0}))
	}
	if len(e.Etas()) != 5 {
		t.Errorf("expected all 5 etas retained with factorization disabled, got %d", len(e.Etas()))
	}
	if e.LP().Len() != 0 {
		t.Errorf("expected no refactor while disabled, LP has %d elements", e.LP().Len())
	}
}

func TestPushEta_CrossingThresholdRefactorsExactlyOnce(t *testing.T) {
	e, err := New(4, Config{RefactorThreshold: 3})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, e.PushEta(0, []float64{1, 0, 0, 0}))
	}
	if len(e.Etas()) != 3 {
		t.Errorf("expected chain length 3 before crossing threshold, got %d", len(e.Etas()))
	}

	require.NoError(t, e.PushEta(1, []float64{0, 1, 0, 0}))
	if len(e.Etas()) != 0 {
		t.Errorf("expected chain to be condensed after crossing threshold, got %d etas", len(e.Etas()))
	}
	if e.LP().Len() == 0 {
		t.Errorf("expected a fresh LP record after the triggered refactor")
	}
}
