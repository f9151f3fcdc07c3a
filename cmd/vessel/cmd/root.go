// Package cmd implements the vessel CLI commands.
//
// The command structure follows a root command that dispatches to
// subcommands (render, tree, config). Global flags are consumed before
// dispatch.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/vessel/cmd/vessel/internal/project"
	"github.com/go-drift/vessel/pkg/config"
	"github.com/go-drift/vessel/pkg/errors"
	"github.com/go-drift/vessel/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(env *Env, args []string) error
}

// Env is what every command receives: the resolved configuration and the
// output streams.
type Env struct {
	Config *config.Config
	Stdout io.Writer
	Stderr io.Writer
}

var rootCmd = &Command{
	Name:  "vessel",
	Short: "vessel - retained-mode UI toolkit tools",
	Long: `vessel renders and inspects vessel view trees without a window.

Use "vessel <command> --help" for more information about a command.`,
	Usage: "vessel [--verbose] [--config FILE] <command> [flags]",
}

var (
	commands = make(map[string]*Command)
	order    []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	order = append(order, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	return execute(args, os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	var (
		verbose    bool
		configPath string
		rest       []string
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(rest) > 0 {
			rest = append(rest, arg)
			continue
		}
		switch {
		case arg == "-h" || arg == "--help" || arg == "help":
			printHelp(stdout)
			return nil
		case arg == "--version" || arg == "version":
			fmt.Fprintf(stdout, "vessel version %s (built %s)\n", Version, BuildTime)
			return nil
		case arg == "-v" || arg == "--verbose":
			verbose = true
		case arg == "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag %q", arg)
		default:
			rest = append(rest, arg)
		}
	}

	if len(rest) == 0 {
		printHelp(stdout)
		return nil
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		printHelp(stderr)
		return fmt.Errorf("unknown command: %s", rest[0])
	}
	cmdArgs := rest[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := project.LoadConfig(wd, configPath)
	if err != nil {
		return err
	}
	verbose = verbose || cfg.Debug.Verbose
	setupLogging(stderr, verbose)
	defer logging.SetLogger(nil)

	return cmd.Run(&Env{Config: cfg, Stdout: stdout, Stderr: stderr}, cmdArgs)
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	errors.SetHandler(&errors.LogHandler{Verbose: verbose})
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range order {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --verbose        Log debug output to stderr")
	fmt.Fprintln(w, "  --config FILE        Load configuration from FILE")
	fmt.Fprintln(w, "  --version            Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration is read from vessel.yaml, vessel.yml or vessel.toml at the")
	fmt.Fprintln(w, "module root when --config is not given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  vessel render -o demo.png      Render the demo gallery")
	fmt.Fprintln(w, "  vessel tree --commands         Dump the widget tree and draw commands")
	fmt.Fprintln(w, "  vessel config --toml           Print the resolved configuration")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
