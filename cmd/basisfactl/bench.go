package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gonum/matrix/mat64"
	"github.com/spf13/cobra"

	"github.com/simplexcore/basisfact/internal/engine"
)

func benchCmd() *cobra.Command {
	var (
		m     int
		solve int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a handful of FTRAN/BTRAN solves against a random non-singular basis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			e, err := engine.New(m, cfg)
			if err != nil {
				return err
			}
			e.SetLogger(logger)

			M := randomNonSingularBasis(m)
			if err := e.SetB0(M); err != nil {
				return fmt.Errorf("SetB0: %w", err)
			}

			y := make([]float64, m)
			for i := range y {
				y[i] = rand.Float64()*10 - 5
			}

			start := time.Now()
			for i := 0; i < solve; i++ {
				e.ForwardTransform(y)
			}
			ftranElapsed := time.Since(start)

			start = time.Now()
			for i := 0; i < solve; i++ {
				e.BackwardTransform(y)
			}
			btranElapsed := time.Since(start)

			fmt.Printf("m=%d solves=%d\n", m, solve)
			fmt.Printf("FTRAN total=%v avg=%v\n", ftranElapsed, ftranElapsed/time.Duration(solve))
			fmt.Printf("BTRAN total=%v avg=%v\n", btranElapsed, btranElapsed/time.Duration(solve))
			return nil
		},
	}

	cmd.Flags().IntVar(&m, "m", 50, "basis dimension")
	cmd.Flags().IntVar(&solve, "solves", 1000, "number of solves to time per direction")
	return cmd
}

func randomNonSingularBasis(m int) []float64 {
	for {
		M := make([]float64, m*m)
		for i := range M {
			M[i] = rand.Float64()*20 - 10
		}
		d := mat64.NewDense(m, m, append([]float64(nil), M...))
		if abs(mat64.Det(d)) > 1e-3 {
			return M
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
