package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"cancer_api/internal/domain/entity"
	"cancer_api/internal/domain/value"
	"cancer_api/pkg/httpx"
	"cancer_api/pkg/logx"
	"cancer_api/pkg/rest"
)

const predictPath = "/api/cancer/predict"

func newPredictCommand(a *app) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
		cell    = SampleCell
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Ask a running server for the diagnosis of a cell",
		Long: "Ask a running server for the diagnosis of a cell. Measurements default to the\n" +
			"selftest reference cell, every feature has its own flag.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := &http.Client{
				Timeout: timeout,
				Transport: httpx.NewLoggingRoundTripper(
					http.DefaultTransport,
					httpx.WithLogFieldMaxLen(a.cfg.HTTP.LogFieldMaxLen),
					httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker(a.cfg.HTTP.MaskedFields...)),
				),
			}

			prediction, err := postPredict(cmd, client, strings.TrimRight(baseURL, "/")+predictPath, cell)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"diagnosis: %s\nmalignant probability: %.2f%%\nbenign probability: %.2f%%\n",
				entity.Prediction{Malignant: prediction.Malignant, Benign: prediction.Benign}.Diagnosis(),
				prediction.Malignant*100, //nolint:mnd
				prediction.Benign*100,    //nolint:mnd
			)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://127.0.0.1:8086", "server base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout") //nolint:mnd

	for _, f := range value.Features() {
		v, _ := cell.Get(f)
		cmd.Flags().Var(&featureFlag{cell: &cell, feature: f, value: v}, flagName(f), f.String())
	}

	return cmd
}

func postPredict(cmd *cobra.Command, client *http.Client, url string, cell entity.Cell) (rest.Prediction, error) {
	body, err := jsoniter.Marshal(map[string]float64{
		value.PerimeterMean.String():  cell.PerimeterMean,
		value.RadiusMean.String():     cell.RadiusMean,
		value.TextureMean.String():    cell.TextureMean,
		value.AreaMean.String():       cell.AreaMean,
		value.SmoothnessMean.String(): cell.SmoothnessMean,
		value.ConcavityMean.String():  cell.ConcavityMean,
		value.SymmetryMean.String():   cell.SymmetryMean,
	})
	if err != nil {
		return rest.Prediction{}, fmt.Errorf("jsoniter.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return rest.Prediction{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return rest.Prediction{}, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr rest.Error

		if err = jsoniter.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return rest.Prediction{}, fmt.Errorf("unexpected status %s", resp.Status)
		}

		return rest.Prediction{}, fmt.Errorf("%s: %s (%s, support id %s)",
			resp.Status, apiErr.Message, apiErr.Code, apiErr.SupportID)
	}

	var prediction rest.Prediction

	if err = jsoniter.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return rest.Prediction{}, fmt.Errorf("jsoniter.Decode: %w", err)
	}

	return prediction, nil
}

// flagName turns perimeter_mean into perimeter-mean.
func flagName(f value.Feature) string {
	return strings.ReplaceAll(f.String(), "_", "-")
}

// featureFlag writes a parsed flag value straight into the cell.
type featureFlag struct {
	cell    *entity.Cell
	feature value.Feature
	value   float64
}

func (f *featureFlag) String() string {
	return fmt.Sprint(f.value)
}

func (f *featureFlag) Set(s string) error {
	var v float64

	if _, err := fmt.Sscan(s, &v); err != nil {
		return fmt.Errorf("%s: %w", f.feature, err)
	}

	f.value = v
	f.cell.Set(f.feature, v)

	return nil
}

func (f *featureFlag) Type() string {
	return "float"
}
