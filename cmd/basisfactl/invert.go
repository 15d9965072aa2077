package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simplexcore/basisfact/internal/engine"
)

func invertCmd() *cobra.Command {
	var (
		m      int
		matrix string
	)

	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Print the explicit inverse of a base matrix",
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

			result := make([]float64, m*m)
			if err := e.InvertB0(result); err != nil {
				return fmt.Errorf("InvertB0: %w", err)
			}

			for i := 0; i < m; i++ {
				fmt.Println(result[i*m : i*m+m])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&m, "m", 3, "basis dimension")
	cmd.Flags().StringVar(&matrix, "matrix", "", "row-major m*m base matrix, comma-separated")
	cmd.MarkFlagRequired("matrix")
	return cmd
}
