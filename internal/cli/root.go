package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diacheck",
	Short: "Diabetes risk prediction from eight clinical measurements",
	Long: `diacheck loads a pre-trained classifier and predicts diabetes risk from
pregnancies, glucose, blood pressure, skin thickness, insulin, BMI,
diabetes pedigree function and age.

Serve the web form, or run a single prediction from the command line and
export the result as a PDF or text report.`,
	SilenceUsage: true,
}

// Global flags
var (
	modelPath string
	logLevel  string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelPath, "model", "m", "", "Path to the trained model artifact (default $DIACHECK_MODEL_PATH or trained_model.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
