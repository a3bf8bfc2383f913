package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathfs"
)

func (a *app) newLsCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fsys, err := a.fs()
			if err != nil {
				return err
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			p := pathArg(dir)

			if !long {
				paths, err := fsys.List(p)
				if err != nil {
					return err
				}
				for _, child := range paths {
					fmt.Fprintln(a.stdout, child.Base()) //nolint:errcheck // best-effort stdout
				}
				return nil
			}

			entries, err := fsys.Entries(p)
			if err != nil {
				return err
			}
			blue := color.New(color.FgBlue)
			if !isTerminal(a.stdout) {
				blue.DisableColor()
			}
			for _, e := range entries {
				name := e.Path.Base().String()
				if e.Type == pathfs.TypeDirectory {
					name = blue.Sprint(name)
				}
				//nolint:errcheck // best-effort stdout
				fmt.Fprintf(a.stdout, "%s %10d %s %s\n",
					e.Metadata.Mode, e.Metadata.Size, e.Metadata.ModTime.UTC().Format(time.DateTime), name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show type, size and modification time")
	return cmd
}

func (a *app) newMkdirCmd() *cobra.Command {
	var parents bool
	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fsys, err := a.fs()
			if err != nil {
				return err
			}
			if parents {
				return fsys.CreateAll(pathArg(args[0]))
			}
			return fsys.CreateDir(pathArg(args[0]))
		},
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parent directories")
	return cmd
}

func (a *app) newRmdirCmd() *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "rmdir <path>",
		Short: "Delete a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fsys, err := a.fs()
			if err != nil {
				return err
			}
			if recursive {
				return fsys.DeleteAll(pathArg(args[0]))
			}
			return fsys.DeleteEmpty(pathArg(args[0]))
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "delete the directory and everything beneath it")
	return cmd
}
