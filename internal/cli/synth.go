package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cancer_api/internal/domain/service/cancer/cancertest"
	"cancer_api/internal/infrastructure/dataset"
)

func newSynthCommand(*app) *cobra.Command {
	var (
		rows int
		seed int64
		out  string
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic dataset with the columns of the diagnostic CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rows < 2 { //nolint:mnd
				return fmt.Errorf("--rows must be at least 2, got %d", rows)
			}

			w := cmd.OutOrStdout()

			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("os.Create: %w", err)
				}
				defer f.Close()

				w = f
			}

			if err := dataset.Write(w, cancertest.Dataset(rows, seed)); err != nil {
				return fmt.Errorf("dataset.Write: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 569, "number of samples") //nolint:mnd
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")

	return cmd
}
