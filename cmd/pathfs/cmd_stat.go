package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// statOutput is the --json form of stat.
type statOutput struct {
	Path     string    `json:"path"`
	Type     string    `json:"type"`
	Size     int64     `json:"size"`
	Mode     string    `json:"mode"`
	Modified time.Time `json:"modified"`
}

func (a *app) newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Describe a path without following links",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fsys, err := a.fs()
			if err != nil {
				return err
			}
			p := pathArg(args[0])
			typ, err := fsys.QueryType(p)
			if err != nil {
				return err
			}
			md, err := fsys.Stat(p)
			if err != nil {
				return err
			}

			out := statOutput{
				Path:     p.String(),
				Type:     typ.String(),
				Size:     md.Size,
				Mode:     md.Mode.String(),
				Modified: md.ModTime.UTC(),
			}
			if a.flags.json {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			//nolint:errcheck // best-effort stdout
			fmt.Fprintf(a.stdout, "path: %s\ntype: %s\nsize: %d\nmode: %s\nmodified: %s\n",
				out.Path, out.Type, out.Size, out.Mode, out.Modified.Format(time.RFC3339))
			return nil
		},
	}
}

func (a *app) newExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ext <path> <extension>",
		Short: "Print path with its extension replaced",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Fprintln(a.stdout, pathArg(args[0]).WithExtension(args[1])) //nolint:errcheck // best-effort stdout
			return nil
		},
	}
}
