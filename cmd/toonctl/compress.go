package main

import (
	"fmt"

	"github.com/Stormrider66/toon"
	"github.com/Stormrider66/toon/codec"
	"github.com/Stormrider66/toon/format"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type compressFlags struct {
	In               string
	Out              string
	OutputFormat     string
	AllLandmarks     bool
	KeyframeInterval int
	NoRLE            bool
	Compression      string
}

func newCompressCmd(a *app) *cobra.Command {
	var f compressFlags

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress a JSON frame sequence into TOON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compress(cmd, &f)
		},
	}

	cmd.Flags().StringVar(&f.In, "in", "-", "input frames JSON file, - for stdin")
	cmd.Flags().StringVar(&f.Out, "out", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&f.OutputFormat, "output-format", "binary", "output encoding: binary|base64|json|sealed")
	cmd.Flags().BoolVar(&f.AllLandmarks, "all-landmarks", false, "keep all 33 landmarks instead of the important 16")
	cmd.Flags().IntVar(&f.KeyframeInterval, "keyframe-interval", codec.DefaultKeyframeInterval, "frames between keyframes")
	cmd.Flags().BoolVar(&f.NoRLE, "no-rle", false, "disable run-length encoding of unchanged frames")
	cmd.Flags().StringVar(&f.Compression, "compression", "", "sealed container compression: none|zstd|s2|lz4 (overrides config)")

	return cmd
}

func (a *app) compress(cmd *cobra.Command, f *compressFlags) error {
	opts := a.cfg.Codec
	if cmd.Flags().Changed("all-landmarks") {
		opts.ImportantLandmarksOnly = !f.AllLandmarks
	}
	if cmd.Flags().Changed("keyframe-interval") {
		opts.KeyframeInterval = f.KeyframeInterval
	}
	if cmd.Flags().Changed("no-rle") {
		opts.EnableRLE = !f.NoRLE
	}

	raw, err := readInput(f.In)
	if err != nil {
		return err
	}
	frames, err := loadFrames(raw)
	if err != nil {
		return err
	}

	d, err := toon.CompressWithOptions(frames, opts)
	if err != nil {
		return err
	}

	var out []byte
	switch f.OutputFormat {
	case "binary":
		out, err = toon.Serialize(d)
	case "base64":
		var s string
		s, err = toon.ToBase64(d)
		out = []byte(s + "\n")
	case "json":
		out, err = codec.ToJSON(d)
	case "sealed":
		name := a.cfg.Container.Compression
		if f.Compression != "" {
			name = f.Compression
		}

		var ct format.CompressionType
		if ct, err = format.ParseCompressionType(name); err != nil {
			return err
		}
		out, err = toon.Seal(d, ct)
	default:
		return fmt.Errorf("unknown output format %q", f.OutputFormat)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(a.stdout, f.Out, out); err != nil {
		return err
	}

	s := toon.Stats(d)
	a.log.Info("compressed",
		zap.String("in", f.In),
		zap.String("format", f.OutputFormat),
		zap.Int("frames", s.FrameCount),
		zap.Int("keyframes", s.KeyframeCount),
		zap.Int("deltaFrames", s.DeltaFrameCount),
		zap.Int("bytes", len(out)),
		zap.Float64("ratio", s.CompressionRatio),
	)

	return nil
}
