package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-resizer/internal/imaging"
	"github.com/ironsheep/image-resizer/internal/resample"
)

func init() { rootCmd.AddCommand(formatsCmd) }

var formatsCmd = &cobra.Command{
	Use:   `formats`,
	Short: `list output formats, resize modes and resamplers`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, opts, err := setup()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FORMAT\tEXT\tMIME\tAVAILABLE\tDEFAULT QUALITY")
		for _, info := range imaging.Formats(opts...) {
			quality := "-"
			if info.Format != imaging.GIF {
				quality = fmt.Sprint(info.DefaultQuality)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", info.Format, info.Extension, info.MIMEType, info.Available, quality)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nmodes: %s\n", strings.Join(imaging.ModeNames(), ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "resamplers: %s (using %s)\n", strings.Join(resample.Names(), ", "), cfg.Resampler)
		return nil
	},
}
