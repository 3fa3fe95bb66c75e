package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/blurhash-mcp/internal/blurhash"
	"github.com/ironsheep/blurhash-mcp/internal/imaging"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <blurhash>",
	Short: "Render a blurhash to a PNG or WebP file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringP("output", "o", "", "Output file (.png, or .webp for lossless WebP)")
	decodeCmd.Flags().Int("width", 32, "Width at which the hash is evaluated")
	decodeCmd.Flags().Int("height", 32, "Height at which the hash is evaluated")
	decodeCmd.Flags().Int("scale", 1, "Integer upscale factor applied after evaluation")
	decodeCmd.Flags().Float32("punch", 1, "Contrast multiplier for the AC components")
	decodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	scale, _ := cmd.Flags().GetInt("scale")
	punch, _ := cmd.Flags().GetFloat32("punch")

	r, err := blurhash.Decode(args[0], punch)
	if err != nil {
		return err
	}

	img, err := imaging.RenderScaled(r, width, height, scale)
	if err != nil {
		return err
	}

	format := imaging.FormatPNG
	if strings.EqualFold(filepath.Ext(outputPath), ".webp") {
		format = imaging.FormatWebP
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if _, err := imaging.WriteImage(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	b := img.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "Decoded %dx%d components → %s (%dx%d)\n", r.XComponents(), r.YComponents(), outputPath, b.Dx(), b.Dy())
	return nil
}
