package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-resizer/internal/imaging"
)

func init() {
	rootCmd.AddCommand(resizeCmd)
	resizeCmd.Flags().StringVarP(&resizeMode, `mode`, `m`, `within`, `resize mode: within, width, height, fill or none`)
	resizeCmd.Flags().IntVarP(&resizeWidth, `width`, `W`, 0, `target width in pixels`)
	resizeCmd.Flags().IntVarP(&resizeHeight, `height`, `H`, 0, `target height in pixels`)
	resizeCmd.Flags().StringVarP(&resizeFormat, `format`, `f`, ``, `output format: jpeg, gif or png (default: source format)`)
	resizeCmd.Flags().IntVarP(&resizeQuality, `quality`, `q`, 0, `JPEG quality 0-100 or PNG compression 0-9 (default: configured)`)
	resizeCmd.Flags().StringVarP(&resizeBackground, `background`, `b`, ``, `flatten transparency onto this hex color, e.g. FFFFFF`)
}

var (
	resizeMode       string
	resizeWidth      int
	resizeHeight     int
	resizeFormat     string
	resizeQuality    int
	resizeBackground string
)

var resizeCmd = &cobra.Command{
	Use:   `resize <source> <output-name>`,
	Short: `resize an image file`,
	Long: `Resize an image file and write it to <output-name> plus the format's extension.

Modes:
  within  fit inside --width x --height, keeping the aspect ratio
  width   exactly --width wide, height follows the aspect ratio
  height  exactly --height tall, width follows the aspect ratio
  fill    cover --width x --height and center-crop to exactly that size
  none    keep the original size (convert or flatten only)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return resizeFunc(cmd, args[0], args[1])
	},
}

func resizeFunc(cmd *cobra.Command, src, output string) error {
	_, logger, opts, err := setup()
	if err != nil {
		return err
	}

	mode, err := imaging.ParseMode(resizeMode)
	if err != nil {
		return err
	}
	var saveOpts []imaging.SaveOption
	if resizeFormat != "" {
		f, err := imaging.ParseFormat(resizeFormat)
		if err != nil {
			return err
		}
		saveOpts = append(saveOpts, imaging.WithFormat(f))
	}
	if cmd.Flags().Changed(`quality`) {
		saveOpts = append(saveOpts, imaging.WithQuality(resizeQuality))
	}
	if resizeBackground != "" {
		saveOpts = append(saveOpts, imaging.WithBackground(resizeBackground))
	}

	r, err := imaging.Open(src, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.Apply(mode, resizeWidth, resizeHeight); err != nil {
		return err
	}
	file, err := r.Save(output, saveOpts...)
	if err != nil {
		return err
	}
	logger.Info("saved", "source", src, "file", file, "mode", mode)
	fmt.Fprintln(cmd.OutOrStdout(), file)
	return nil
}
