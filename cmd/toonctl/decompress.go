package main

import (
	"github.com/Stormrider66/toon/codec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type decompressFlags struct {
	In   string
	Out  string
	From int
	To   int
}

func newDecompressCmd(a *app) *cobra.Command {
	var f decompressFlags

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Reconstruct a JSON frame sequence from TOON input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decompress(&f)
		},
	}

	cmd.Flags().StringVar(&f.In, "in", "-", "TOON input file, - for stdin")
	cmd.Flags().StringVar(&f.Out, "out", "-", "output frames JSON file, - for stdout")
	cmd.Flags().IntVar(&f.From, "from", 0, "first frame to reconstruct")
	cmd.Flags().IntVar(&f.To, "to", -1, "frame after the last one to reconstruct, -1 for the end")

	return cmd
}

func (a *app) decompress(f *decompressFlags) error {
	raw, err := readInput(f.In)
	if err != nil {
		return err
	}
	d, kind, err := loadData(raw)
	if err != nil {
		return err
	}

	dec, err := codec.NewDecoder(d)
	if err != nil {
		return err
	}

	to := f.To
	if to < 0 {
		to = dec.Len()
	}
	frames, err := dec.DecodeRange(f.From, to)
	if err != nil {
		return err
	}

	out, err := marshalIndent(frames)
	if err != nil {
		return err
	}
	if err := writeOutput(a.stdout, f.Out, out); err != nil {
		return err
	}

	a.log.Info("decompressed",
		zap.String("in", f.In),
		zap.String("kind", string(kind)),
		zap.Int("frames", len(frames)),
		zap.Int("from", f.From),
	)

	return nil
}
