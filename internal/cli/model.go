package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/diacheck/internal/adapters/model"
	"github.com/emiliopalmerini/diacheck/internal/domain"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show the loaded model artifact",
	Long: `Load the model artifact and print its kind and the feature order it
expects. Useful to check an artifact before serving it.`,
	RunE: runModel,
}

func init() {
	rootCmd.AddCommand(modelCmd)
}

func runModel(cmd *cobra.Command, args []string) error {
	a, err := newApp(context.Background())
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	printModel(cmd.OutOrStdout(), a.Model)
	return nil
}

func printModel(w io.Writer, m *model.Linear) {
	fmt.Fprintf(w, "Model: %s\n", m.Path())
	fmt.Fprintf(w, "  Kind:   %s\n", m.Kind())
	fmt.Fprintf(w, "  Scaled: %t\n", m.Scaled())
	if m.Kind() == model.KindLogistic {
		fmt.Fprintf(w, "  Threshold: %.2f\n", m.Threshold())
	}
	fmt.Fprintln(w, "  Feature order:")
	for i, f := range domain.FeatureOrder {
		fmt.Fprintf(w, "    %d. %-18s %s\n", i+1, f.Key, f.Label)
	}
}
