package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nitzanshifris/cv2web/internal/adapt"
	"github.com/nitzanshifris/cv2web/internal/observability"
	"github.com/nitzanshifris/cv2web/internal/schemas"
	"github.com/nitzanshifris/cv2web/internal/selection"
	"github.com/nitzanshifris/cv2web/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <cv.json> [cv.json...]",
	Short: "Select and adapt components for one or more CV files",
	Long:  "Reads parsed CV JSON files, selects a UI component for each populated section and adapts the section content into component props. Writes one selections file per input.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

var (
	generateOut       string
	generateArchetype string
	generateConfig    string
	generateVerbose   bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output directory (default: next to each input file)")
	generateCmd.Flags().StringVar(&generateArchetype, "archetype", "", "Override archetype detection (creative, technical, general)")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to JSON config file")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print selection analysis for each CV")
	rootCmd.AddCommand(generateCmd)
}

// generateResult is the document written per input CV.
type generateResult struct {
	Selections []types.ComponentSelection `json:"selections"`
	Report     *selection.Report          `json:"report"`
}

func runGenerate(_ *cobra.Command, args []string) error {
	if generateArchetype != "" {
		switch generateArchetype {
		case "creative", "technical", "general":
		default:
			return fmt.Errorf("invalid archetype %q (want creative, technical or general)", generateArchetype)
		}
	}

	appCfg, err := loadAppConfig(generateConfig)
	if err != nil {
		return err
	}
	verbose := generateVerbose || appCfg.Verbose
	logger := newLogger(verbose)

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

	if generateOut != "" {
		if err := os.MkdirAll(generateOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	printer := observability.NewPrinter(os.Stderr)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for _, path := range args {
		g.Go(func() error {
			result, err := generateOne(selector, cvValidator, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			outPath := selectionsPath(path, generateOut)
			if err := writeJSON(outPath, result); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			logger.Info().Str("cv", path).Str("out", outPath).
				Int("selections", len(result.Selections)).Msg("generated")
			if verbose {
				printer.PrintSelections(result.Selections)
				printer.PrintReport(result.Report)
			}
			return nil
		})
	}

	return g.Wait()
}

func generateOne(selector *selection.Selector, cvValidator *schemas.Validator, path string) (*generateResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV: %w", err)
	}

	if err := cvValidator.ValidateBytes(raw); err != nil {
		return nil, err
	}

	var cv types.CVData
	if err := json.Unmarshal(raw, &cv); err != nil {
		return nil, fmt.Errorf("failed to parse CV: %w", err)
	}

	var opts []selection.Option
	if generateArchetype != "" {
		opts = append(opts, selection.WithArchetype(types.ParseArchetype(generateArchetype)))
	}

	selections, report := selector.Select(cv, opts...)
	return &generateResult{Selections: selections, Report: report}, nil
}

// selectionsPath derives the output filename: a.json → a.selections.json,
// placed in outDir when given.
func selectionsPath(inPath, outDir string) string {
	base := filepath.Base(inPath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".selections.json"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(inPath), base)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
