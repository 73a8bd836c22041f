package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meigma/filelist/legacy"
)

func newMigrateCmd(root *rootOptions) *cobra.Command {
	var (
		workers int
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "migrate FILE...",
		Short: "Retrofit legacy headers and compress their file lists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encOpts, err := root.encodeOptions()
			if err != nil {
				return err
			}
			logger := root.logger(cmd.ErrOrStderr())

			headers, err := loadHeaders(args)
			if err != nil {
				return err
			}
			stores := make([]legacy.Store, len(headers))
			for i, h := range headers {
				stores[i] = h
			}

			err = legacy.MigrateAll(cmd.Context(), stores,
				legacy.WithLogger(logger),
				legacy.WithWorkers(workers),
				legacy.WithStrictPaths(strict))
			if err != nil {
				return err
			}

			for i, path := range args {
				d, err := saveHeader(path, headers[i], encOpts)
				if err != nil {
					return err
				}
				logger.Debug("header rewritten", "path", path, "tags", headers[i].Len())
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d, path)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "headers to convert at once (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on file paths without a directory")
	return cmd
}
