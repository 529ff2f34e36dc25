package cmd

import (
	"github.com/diwalsh/color-palette-extractor/internal/export"
	"github.com/diwalsh/color-palette-extractor/internal/pipeline"
	"github.com/diwalsh/color-palette-extractor/pkg/swatch"
	"github.com/diwalsh/color-palette-extractor/pkg/util"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntP("colors", "c", 5, "number of dominant colors to extract")
	viper.BindPFlag("colors", extractCmd.Flags().Lookup("colors"))

	extractCmd.Flags().Float64P("threshold", "t", 40,
		"minimum distance in RGB space between palette colors; smaller values allow more similar colors")
	viper.BindPFlag("threshold", extractCmd.Flags().Lookup("threshold"))

	extractCmd.Flags().StringP("format", "f", "hex", "color code format: hex, rgb, or both")
	viper.BindPFlag("format", extractCmd.Flags().Lookup("format"))

	extractCmd.Flags().StringP("output-dir", "o", "", "destination directory (default: alongside the source image)")
	viper.BindPFlag("output-dir", extractCmd.Flags().Lookup("output-dir"))

	extractCmd.Flags().Int64("seed", 42, "random seed for centroid initialization")
	viper.BindPFlag("seed", extractCmd.Flags().Lookup("seed"))

	extractCmd.Flags().Int("swatch-width", 100, "width of each swatch block in pixels")
	viper.BindPFlag("swatch.width", extractCmd.Flags().Lookup("swatch-width"))

	extractCmd.Flags().Int("swatch-height", 100, "height of the swatch strip in pixels")
	viper.BindPFlag("swatch.height", extractCmd.Flags().Lookup("swatch-height"))

	extractCmd.Flags().Int("nice", 10, "the priority level of the process")
	viper.BindPFlag("nice", extractCmd.Flags().Lookup("nice"))
}

var extractCmd = &cobra.Command{
	Use:   "extract IMAGE",
	Short: "Extracts the dominant colors of an image into a palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := util.BeNice(viper.GetInt("nice")); err != nil {
			log.Warn().Err(err).Msg("continuing at normal priority")
		}

		format, err := export.ParseFormat(viper.GetString("format"))
		if err != nil {
			return err
		}

		cfg := pipeline.Config{
			ImagePath: args[0],
			Colors:    viper.GetInt("colors"),
			Threshold: viper.GetFloat64("threshold"),
			Format:    format,
			OutputDir: viper.GetString("output-dir"),
			Seed:      viper.GetInt64("seed"),
			Swatch: swatch.Options{
				Width:  viper.GetInt("swatch.width"),
				Height: viper.GetInt("swatch.height"),
			},
		}

		result, err := pipeline.Run(cmd.Context(), cfg, &log.Logger)
		if err != nil {
			return err
		}

		for _, c := range result.Palette {
			switch format {
			case export.FormatRGB:
				cmd.Println(c.RGB())
			case export.FormatBoth:
				cmd.Println(c.Hex(), "|", c.RGB())
			default:
				cmd.Println(c.Hex())
			}
		}

		cmd.Println("color swatches saved to", result.SwatchPath)
		cmd.Println("color codes saved to", result.CodesPath)
		return nil
	},
}
