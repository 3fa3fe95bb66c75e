package main

import (
	"fmt"

	"github.com/ironsheep/blurhash-mcp/internal/imaging"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <image>",
	Short: "Print the blurhash of an image file",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().IntP("x-components", "x", 4, "Components along x (1-9)")
	encodeCmd.Flags().IntP("y-components", "y", 3, "Components along y (1-9)")
	encodeCmd.Flags().String("quadrant", "", "Encode only a named region (top-left, center, left-half, ...)")
	encodeCmd.Flags().Int("max-dimension", 0, "Downscale so neither side exceeds this before encoding (0: off)")
	encodeCmd.Flags().Int("workers", 1, "Goroutines for the transform (results may differ in the last digit above 1)")
	encodeCmd.Flags().BoolP("verbose", "V", false, "Also print sizes and the average color")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	xComponents, _ := cmd.Flags().GetInt("x-components")
	yComponents, _ := cmd.Flags().GetInt("y-components")
	quadrant, _ := cmd.Flags().GetString("quadrant")
	maxDimension, _ := cmd.Flags().GetInt("max-dimension")
	workers, _ := cmd.Flags().GetInt("workers")
	verbose, _ := cmd.Flags().GetBool("verbose")

	img, err := imaging.NewImageCache().Load(args[0])
	if err != nil {
		return err
	}

	opts := imaging.EncodeOptions{
		XComponents:  xComponents,
		YComponents:  yComponents,
		MaxDimension: maxDimension,
		Workers:      workers,
	}
	if quadrant != "" {
		b := img.Bounds()
		region, err := imaging.NamedRegion(b.Dx(), b.Dy(), quadrant)
		if err != nil {
			return err
		}
		opts.Region = &region
	}

	result, err := imaging.EncodeImage(img, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Blurhash)
	if verbose {
		fmt.Fprintf(out, "  Source:  %dx%d\n", result.SourceWidth, result.SourceHeight)
		fmt.Fprintf(out, "  Encoded: %dx%d with %dx%d components\n",
			result.EncodedWidth, result.EncodedHeight, result.XComponents, result.YComponents)
		fmt.Fprintf(out, "  Average: %s\n", result.AverageColor.Hex)
	}
	return nil
}
