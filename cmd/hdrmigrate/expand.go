package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meigma/filelist/legacy"
)

func newExpandCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "expand FILE...",
		Short: "Convert compressed file lists back to the flat layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encOpts, err := root.encodeOptions()
			if err != nil {
				return err
			}
			logger := root.logger(cmd.ErrOrStderr())

			for _, path := range args {
				h, err := loadHeader(path)
				if err != nil {
					return err
				}
				if err := legacy.ExpandFilelist(h, legacy.WithLogger(logger)); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				d, err := saveHeader(path, h, encOpts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d, path)
			}
			return nil
		},
	}
}
