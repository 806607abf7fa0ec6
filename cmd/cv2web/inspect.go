package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nitzanshifris/cv2web/internal/adapt"
	"github.com/nitzanshifris/cv2web/internal/observability"
	"github.com/nitzanshifris/cv2web/internal/schemas"
	"github.com/nitzanshifris/cv2web/internal/selection"
	"github.com/nitzanshifris/cv2web/internal/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <cv.json>",
	Short: "Analyze a CV without writing output",
	Long:  "Runs component selection over a parsed CV and prints the chosen components and the analysis report. Nothing is written to disk.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var (
	inspectArchetype string
	inspectConfig    string
	inspectJSON      bool
)

func init() {
	inspectCmd.Flags().StringVar(&inspectArchetype, "archetype", "", "Override archetype detection (creative, technical, general)")
	inspectCmd.Flags().StringVar(&inspectConfig, "config", "", "Path to JSON config file")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Emit the full result as JSON on stdout")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	appCfg, err := loadAppConfig(inspectConfig)
	if err != nil {
		return err
	}
	logger := newLogger(appCfg.Verbose)

	selCfg := appCfg.SelectionConfig()
	adapter := adapt.New(adapt.Config{
		Layout:        selCfg.Layout,
		MinBentoItems: selCfg.MinBentoItems,
		Logger:        logger,
	})
	selector := selection.New(selCfg, adapter, logger)

	cvValidator, err := schemas.NewValidator()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read CV: %w", err)
	}
	if err := cvValidator.ValidateBytes(raw); err != nil {
		return err
	}

	var cv types.CVData
	if err := json.Unmarshal(raw, &cv); err != nil {
		return fmt.Errorf("failed to parse CV: %w", err)
	}

	var opts []selection.Option
	if inspectArchetype != "" {
		opts = append(opts, selection.WithArchetype(types.ParseArchetype(inspectArchetype)))
	}
	selections, report := selector.Select(cv, opts...)

	if inspectJSON {
		return json.NewEncoder(os.Stdout).Encode(generateResult{
			Selections: selections,
			Report:     report,
		})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSelections(selections)
	printer.PrintReport(report)
	return nil
}
