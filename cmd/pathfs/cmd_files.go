package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathfs/fspath"
)

// pathArg converts a command-line argument to a path. Arguments are raw OS
// bytes, so they become Native paths.
func pathArg(s string) fspath.Path {
	return fspath.FromNative([]byte(s))
}

func (a *app) newCatCmd() *cobra.Command {
	var text bool
	cmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fsys, err := a.fs()
			if err != nil {
				return err
			}
			p := pathArg(args[0])
			if text {
				s, err := fsys.ReadText(p)
				if err != nil {
					return err
				}
				_, err = io.WriteString(a.stdout, s)
				return err
			}
			data, err := fsys.ReadBytes(p)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "fail unless the file is valid UTF-8")
	return cmd
}

func (a *app) newLinesCmd() *cobra.Command {
	var number bool
	cmd := &cobra.Command{
		Use:   "lines <path>",
		Short: "Stream a file line by line",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fsys, err := a.fs()
			if err != nil {
				return err
			}
			n := 0
			for line, err := range fsys.Lines(pathArg(args[0])) {
				if err != nil {
					return err
				}
				n++
				if number {
					fmt.Fprintf(a.stdout, "%6d\t", n) //nolint:errcheck // best-effort stdout
				}
				fmt.Fprintf(a.stdout, "%s\n", line) //nolint:errcheck // best-effort stdout
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&number, "number", "n", false, "number the output lines")
	return cmd
}

func (a *app) newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path> [content]",
		Short: "Write content (or stdin) to a file, replacing it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := a.fs()
			if err != nil {
				return err
			}
			p := pathArg(args[0])
			if len(args) == 2 {
				return fsys.WriteText(p, args[1])
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return fsys.WriteBytes(p, data)
		},
	}
}

func (a *app) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>...",
		Short: "Delete files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fsys, err := a.fs()
			if err != nil {
				return err
			}
			for _, arg := range args {
				if err := fsys.Delete(pathArg(arg)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
