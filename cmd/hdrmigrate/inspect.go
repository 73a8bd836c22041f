package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meigma/filelist/header"
	"github.com/meigma/filelist/legacy"
)

func newInspectCmd(_ *rootOptions) *cobra.Command {
	var files bool
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the tags of an encoded header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			h, err := header.Unmarshal(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "digest:      %s\n", header.Digest(data))
			fmt.Fprintf(out, "compression: %s\n", header.Compression(data[0]))
			fmt.Fprintf(out, "source:      %t\n", h.IsSource())
			for _, tag := range h.Tags() {
				kind, _ := h.Kind(tag)
				n := 0
				switch kind {
				case header.KindStrings:
					vals, _ := h.Strings(tag)
					n = len(vals)
				case header.KindUint32s:
					vals, _ := h.Uint32s(tag)
					n = len(vals)
				}
				fmt.Fprintf(out, "%-6d %-16s %-8s %d\n", uint32(tag), tag, kind, n)
			}

			if !files {
				return nil
			}
			paths, err := legacy.Filenames(h)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&files, "files", false, "also list the file paths")
	return cmd
}
