// pathfs is a small command-line front end for the pathfs filesystem layer.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathfs"
	platformerrors "github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/host"
	"github.com/jmgilman/go/pathfs/host/billy"
	"github.com/jmgilman/go/pathfs/host/minio"
	"github.com/jmgilman/go/pathfs/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// opener builds the host for a loaded configuration.
type opener func(cfg *config.Config) (host.Host, error)

// globals holds the persistent flag values of one invocation.
type globals struct {
	configPath string
	backend    string
	debug      bool
	json       bool
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer
	open           opener
	flags          globals
}

// run executes the CLI with the given args, writing output to stdout and
// errors to stderr. Returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(stderr, "pathfs: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}
	return runWith(args, stdout, stderr, openHost)
}

// runWith is run with an injectable host opener.
func runWith(args []string, stdout, stderr io.Writer, open opener) int {
	a := &app{stdout: stdout, stderr: stderr, open: open}
	root := a.newRootCmd()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		a.report(err)
		return 1
	}
	return 0
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathfs",
		Short:         "Inspect and modify files through a pathfs host",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default ~/.pathfs/config.yaml)")
	pf.StringVar(&a.flags.backend, "backend", "", "host backend: local, memory or minio")
	pf.BoolVar(&a.flags.debug, "debug", false, "log failed operations")
	pf.BoolVar(&a.flags.json, "json", false, "print errors as JSON")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		a.newCatCmd(),
		a.newLinesCmd(),
		a.newWriteCmd(),
		a.newRmCmd(),
		a.newStatCmd(),
		a.newLsCmd(),
		a.newMkdirCmd(),
		a.newRmdirCmd(),
		a.newExtCmd(),
	)
	return root
}

// fs loads the configuration and opens the selected host.
func (a *app) fs() (*pathfs.FS, error) {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return nil, err
	}
	if a.flags.backend != "" {
		cfg.Backend = a.flags.backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h, err := a.open(cfg)
	if err != nil {
		return nil, err
	}
	return pathfs.New(h, pathfs.WithLogger(a.logger())), nil
}

func (a *app) logger() *slog.Logger {
	level := slog.LevelInfo
	if a.flags.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

// report prints err as "pathfs: message", or as the JSON error body with
// --json.
func (a *app) report(err error) {
	if a.flags.json {
		enc := json.NewEncoder(a.stderr)
		_ = enc.Encode(platformerrors.ToJSON(err))
		return
	}

	msg := err.Error()
	var pe platformerrors.PlatformError
	if platformerrors.As(err, &pe) {
		msg = pe.Message()
	}

	red := color.New(color.FgRed)
	if !isTerminal(a.stderr) {
		red.DisableColor()
	}
	red.Fprintf(a.stderr, "pathfs: %s\n", msg) //nolint:errcheck // best-effort stderr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// openHost is the production opener.
func openHost(cfg *config.Config) (host.Host, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return billy.NewMemory(), nil
	case config.BackendMinIO:
		return minio.New(cfg.MinIO.HostConfig())
	default:
		root := cfg.Root
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			root = wd
		}
		return billy.NewLocal(billy.WithRoot(root)), nil
	}
}
