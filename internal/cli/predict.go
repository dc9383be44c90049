package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/diacheck/internal/domain"
	"github.com/emiliopalmerini/diacheck/internal/ports"
	"github.com/emiliopalmerini/diacheck/internal/predictor"
	"github.com/emiliopalmerini/diacheck/internal/report"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run a single prediction",
	Long: `Validate the eight measurements, run the model and print the result.
With --report the result is also exported; without --output the report is
written to a temporary file whose path is printed.

Examples:
  diacheck predict --pregnancies 2 --glucose 120 --blood-pressure 70 \
    --skin-thickness 20 --insulin 80 --bmi 25.0 --diabetes-pedigree 0.5 --age 33
  diacheck predict ... --report pdf --output report.pdf
  diacheck predict ... --report text`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

// Flags
var (
	predictInputs = make(map[string]*string, domain.FeatureCount)
	predictReport string
	predictOutput string
)

func init() {
	rootCmd.AddCommand(predictCmd)

	for _, f := range domain.FeatureOrder {
		predictInputs[f.Key] = predictCmd.Flags().String(flagName(f.Key), "", f.Label)
	}
	predictCmd.Flags().StringVarP(&predictReport, "report", "r", "", "Export a report: pdf, text")
	predictCmd.Flags().StringVarP(&predictOutput, "output", "o", "", "Report file (default: temporary file)")
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

type predictOptions struct {
	Raw    domain.RawInput
	Report string
	Output string
}

func runPredict(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	raw := make(domain.RawInput, domain.FeatureCount)
	for key, v := range predictInputs {
		raw[key] = *v
	}

	return predict(ctx, a.Service, a.Metrics, predictOptions{
		Raw:    raw,
		Report: predictReport,
		Output: predictOutput,
	}, cmd.OutOrStdout())
}

func predict(ctx context.Context, svc *predictor.Service, metrics ports.MetricsRecorder, opts predictOptions, out io.Writer) error {
	var format report.Format
	if opts.Report != "" {
		f, err := report.ParseFormat(opts.Report)
		if err != nil {
			return err
		}
		format = f
	}

	res, err := svc.Predict(ctx, opts.Raw, "cli")
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(out, "⚠️  %s\n", domain.ValidationMessage)
			for _, key := range verr.Fields {
				fmt.Fprintf(out, "  --%s is empty or not a number\n", flagName(key))
			}
		}
		return err
	}

	fmt.Fprintf(out, "Prediction: %s\n", res.Label())

	if format == "" {
		return nil
	}

	path, err := writeReport(format, report.New(res.Features.Details, res.Label()), opts.Output)
	if err != nil {
		return err
	}
	if metrics != nil {
		metrics.RecordReport(ctx, string(format))
	}

	fmt.Fprintf(out, "Report written to %s\n", path)
	return nil
}

func writeReport(format report.Format, rep report.Report, output string) (string, error) {
	var (
		f   *os.File
		err error
	)
	if output == "" {
		f, err = os.CreateTemp("", "diabetes_report-*."+format.Extension())
	} else {
		f, err = os.Create(output)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if err := report.Render(f, format, rep); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return f.Name(), nil
}
