package main

import (
	"fmt"

	"github.com/Stormrider66/toon"
	"github.com/Stormrider66/toon/codec"
	"github.com/Stormrider66/toon/container"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStatsCmd(a *app) *cobra.Command {
	var (
		in     string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print compression statistics for TOON input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return err
			}
			d, kind, err := loadData(raw)
			if err != nil {
				return err
			}

			s := toon.Stats(d)
			a.log.Debug("stats", zap.String("in", in), zap.String("kind", string(kind)))

			if asJSON {
				out, err := marshalIndent(s)
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(out)

				return err
			}
			_, err = fmt.Fprintln(a.stdout, s.String())

			return err
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "TOON input file, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print statistics as JSON")

	return cmd
}

// inspection is the inspect command output.
type inspection struct {
	Kind      string          `json:"kind"`
	Container *container.Info `json:"container,omitempty"`
	Header    codec.Header    `json:"header"`
	Records   int             `json:"records"`
	Size      int             `json:"serializedSize"`
}

func newInspectCmd(a *app) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the header fields of TOON input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return err
			}
			d, kind, err := loadData(raw)
			if err != nil {
				return err
			}

			res := inspection{
				Kind:    string(kind),
				Header:  d.Header,
				Records: len(d.Keyframes) + len(d.DeltaFrames),
				Size:    d.Size(),
			}
			if kind == kindSealed {
				info, err := container.Inspect(raw)
				if err != nil {
					return err
				}
				res.Container = &info
			}

			out, err := marshalIndent(res)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(out)

			return err
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "TOON input file, - for stdin")

	return cmd
}
