package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplexcore/basisfact/internal/engine"
)

func demoCmd() *cobra.Command {
	var (
		m        int
		matrix   string
		etaFlags []string
		rhs      string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Construct an engine, apply a matrix and etas, and print FTRAN/BTRAN solutions",
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

			if matrix != "" {
				M, err := parseFloats(matrix)
				if err != nil {
					return fmt.Errorf("--matrix: %w", err)
				}
				if len(M) != m*m {
					return fmt.Errorf("--matrix: expected %d entries, got %d", m*m, len(M))
				}
				if err := e.SetB0(M); err != nil {
					return fmt.Errorf("SetB0: %w", err)
				}
			}

			for _, spec := range etaFlags {
				col, v, err := parseEta(spec, m)
				if err != nil {
					return fmt.Errorf("--eta %q: %w", spec, err)
				}
				if err := e.PushEta(col, v); err != nil {
					return fmt.Errorf("PushEta: %w", err)
				}
			}

			y, err := parseFloats(rhs)
			if err != nil {
				return fmt.Errorf("--rhs: %w", err)
			}
			if len(y) != m {
				return fmt.Errorf("--rhs: expected %d entries, got %d", m, len(y))
			}

			fmt.Printf("U:         %v\n", e.U())
			fmt.Printf("LP length: %d\n", e.LP().Len())
			fmt.Printf("eta count: %d\n", len(e.Etas()))
			fmt.Printf("FTRAN(y):  %v\n", e.ForwardTransform(y))
			fmt.Printf("BTRAN(y):  %v\n", e.BackwardTransform(y))
			return nil
		},
	}

	cmd.Flags().IntVar(&m, "m", 3, "basis dimension")
	cmd.Flags().StringVar(&matrix, "matrix", "", "row-major m*m base matrix, comma-separated")
	cmd.Flags().StringArrayVar(&etaFlags, "eta", nil, "col:v0,v1,... (repeatable)")
	cmd.Flags().StringVar(&rhs, "rhs", "", "right-hand-side vector, comma-separated")
	cmd.MarkFlagRequired("rhs")
	return cmd
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseEta(spec string, m int) (int, []float64, error) {
	colPart, vecPart, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, nil, fmt.Errorf("expected col:v0,v1,...")
	}
	col, err := strconv.Atoi(colPart)
	if err != nil {
		return 0, nil, err
	}
	v, err := parseFloats(vecPart)
	if err != nil {
		return 0, nil, err
	}
	if len(v) != m {
		return 0, nil, fmt.Errorf("expected %d vector entries, got %d", m, len(v))
	}
	return col, v, nil
}
