package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fcusum"
)

func testCmd() *cobra.Command {
	var (
		configPath string
		dataPath   string
		yCol       string
		xCols      string
		kstar      float64
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the Fourier CUSUM cointegration test on CSV data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &Config{KStar: fcusum.DefaultKStar}
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				if loaded.KStar == 0 {
					loaded.KStar = fcusum.DefaultKStar
				}
				cfg = loaded
			}

			// Flags take precedence over the config file
			if cmd.Flags().Changed("data") {
				cfg.Data = dataPath
			}
			if cmd.Flags().Changed("y") {
				cfg.Y = yCol
			}
			if cmd.Flags().Changed("x") {
				cfg.X = splitColumns(xCols)
			}
			if cmd.Flags().Changed("kstar") {
				cfg.KStar = kstar
			}
			if cmd.Flags().Changed("out") {
				cfg.Out = outPath
			}

			if cfg.Data == "" {
				return fmt.Errorf("no data file provided (--data or config)")
			}
			if cfg.Y == "" {
				return fmt.Errorf("no response column provided (--y or config)")
			}
			if len(cfg.X) == 0 {
				return fmt.Errorf("no regressor columns provided (--x or config)")
			}

			ds, err := fcusum.LoadCSVDataset(cfg.Data)
			if err != nil {
				return err
			}
			rows, _ := ds.M.Dims()
			log.Info().Str("file", cfg.Data).Int("rows", rows).
				Strs("columns", ds.Names).Msg("loaded dataset")

			y, err := ds.Column(cfg.Y)
			if err != nil {
				return err
			}
			x, err := ds.Columns(cfg.X)
			if err != nil {
				return err
			}

			log.Info().Str("y", cfg.Y).Strs("x", cfg.X).
				Float64("kstar", cfg.KStar).Msg("running test")

			result, err := fcusum.RunMatrix(y, x, cfg.KStar)
			if err != nil {
				return fmt.Errorf("test failed: %w", err)
			}

			if result.Warning != nil {
				log.Warn().Msg(result.Warning.Error())
			}

			fmt.Print(fcusum.Summary(result))

			if cfg.Out != "" {
				if err := fcusum.WriteResultCSV(cfg.Out, result); err != nil {
					return fmt.Errorf("write result: %w", err)
				}
				log.Info().Str("file", cfg.Out).Msg("result written")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "yaml config file")
	cmd.Flags().StringVar(&dataPath, "data", "", "CSV data file with header row")
	cmd.Flags().StringVar(&yCol, "y", "", "response column name")
	cmd.Flags().StringVar(&xCols, "x", "", "comma-separated regressor column names")
	cmd.Flags().Float64Var(&kstar, "kstar", fcusum.DefaultKStar, "upper bound of the frequency grid")
	cmd.Flags().StringVar(&outPath, "out", "", "optional result CSV path")

	return cmd
}

// splitColumns parses a comma-separated column list, dropping empty parts.
func splitColumns(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
