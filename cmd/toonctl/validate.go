package main

import (
	"fmt"

	"github.com/Stormrider66/toon/codec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCmd(a *app) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that TOON input is well formed and decodable",
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

			if err := codec.Validate(d); err != nil {
				return err
			}
			dec, err := codec.NewDecoder(d)
			if err != nil {
				return err
			}

			a.log.Debug("validated", zap.String("in", in), zap.String("kind", string(kind)))
			_, err = fmt.Fprintf(a.stdout, "ok: %s input, %d frames\n", kind, dec.Len())

			return err
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "TOON input file, - for stdin")

	return cmd
}
