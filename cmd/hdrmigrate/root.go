package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/meigma/filelist/header"
)

type rootOptions struct {
	verbose     bool
	compression string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "hdrmigrate",
		Short: "Convert package header file lists",
		Long: `hdrmigrate rewrites encoded package headers in place.

migrate retrofits legacy headers: the flat OldFilenames list becomes the
compressed DirNames/BaseNames/DirIndexes triple, stale uid/gid tags are
dropped and binary packages gain an explicit self-provide.

expand converts compressed file lists back to the flat layout.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.compression, "compression", "zstd", "payload compression for rewritten headers (none, zstd, lz4)")

	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newExpandCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))
	return cmd
}

// logger returns an slog logger backed by a charm logger on w.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "hdrmigrate"})
	if o.verbose {
		l.SetLevel(log.DebugLevel)
	}
	return slog.New(l)
}

func (o *rootOptions) encodeOptions() ([]header.EncodeOption, error) {
	c, err := header.ParseCompression(o.compression)
	if err != nil {
		return nil, err
	}
	return []header.EncodeOption{header.WithCompression(c)}, nil
}
