package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cancer_api/internal/application"
	"cancer_api/internal/domain/entity"
	"cancer_api/internal/domain/service/cancer"
	"cancer_api/internal/domain/value"
)

// SampleCell is the reference measurement used by selftest.
//
//nolint:gochecknoglobals,mnd
var SampleCell = entity.Cell{
	PerimeterMean:  123,
	RadiusMean:     21,
	TextureMean:    20,
	AreaMean:       1020,
	SmoothnessMean: 0.1,
	ConcavityMean:  0.2,
	SymmetryMean:   0.25,
}

func newSelftestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Train from the configured source and predict a reference cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pg := application.NewPostgres(a.cfg.Postgres)
			defer pg.Close(ctx)

			source, err := application.NewDatasetSource(ctx, a.cfg, pg)
			if err != nil {
				return fmt.Errorf("application.NewDatasetSource: %w", err)
			}

			provider := cancer.NewProvider(source, application.NewTrainOptions(a.cfg.Model), nil)

			model, err := provider.Instance(ctx)
			if err != nil {
				return fmt.Errorf("provider.Instance: %w", err)
			}

			return writeSelftest(cmd.OutOrStdout(), source.Name(), model)
		},
	}
}

func writeSelftest(w io.Writer, source string, model *cancer.Model) error {
	info := model.Info()
	prediction := model.Predict(SampleCell)
	weights := model.FeatureWeights()

	p := &printer{w: w}

	p.printf("Step 1: reference cell\n")

	for _, f := range value.Features() {
		v, _ := SampleCell.Get(f)
		p.printf("\t%-16s %g\n", f, v)
	}

	p.printf("\nStep 2: model trained on %d samples from %s\n", info.DatasetSize, source)

	if e := info.Evaluation; e != nil {
		p.printf("\thold-out accuracy %.2f%% on %d samples\n", e.Accuracy*100, e.TestSize) //nolint:mnd
	}

	p.printf("\nStep 3: prediction\n")
	p.printf("\tmalignant probability: %.2f%%\n", prediction.Malignant*100) //nolint:mnd
	p.printf("\tbenign probability: %.2f%%\n", prediction.Benign*100)       //nolint:mnd

	p.printf("\nStep 4: feature weights (decision tree)\n")

	for _, f := range value.Features() {
		p.printf("\t%-16s %.2f%%\n", f, weights[f]*100) //nolint:mnd
	}

	return p.err
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
