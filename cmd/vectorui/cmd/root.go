// Package cmd implements the vectorui CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, run, replay, theme).
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-drift/vectorui/cmd/vectorui/internal/config"
	"github.com/go-drift/vectorui/cmd/vectorui/internal/gallery"
	"github.com/go-drift/vectorui/pkg/host"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(env *Env, args []string) error
	SubCommands []*Command
}

// Env carries the global flags and output streams into a command.
type Env struct {
	ConfigPath string
	Trace      bool
	Stdout     io.Writer
	Stderr     io.Writer
}

var rootCmd = &Command{
	Name:  "vectorui",
	Short: "vectorui - vector widgets driven by an interaction state machine",
	Long: `vectorui builds a gallery of vector widgets (button, checkbox, radio
buttons, scroll bar, progress bar, toggle switch) on an in-memory surface
and lets you render it, drive it from the terminal, or replay scripted input.

Use "vectorui <command> --help" for more information about a command.`,
	Usage: "vectorui [--config FILE] [--trace] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	return execute(&Env{Stdout: os.Stdout, Stderr: os.Stderr}, args)
}

func execute(env *Env, args []string) error {
	if len(args) == 0 {
		printHelp(env.Stdout, rootCmd)
		return nil
	}

	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(env.Stdout, rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(env.Stdout, "vectorui version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--trace":
			env.Trace = true
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			env.ConfigPath = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config=") {
				env.ConfigPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(env.Stdout, rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(env.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(env.Stderr, rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(env.Stdout, cmd)
			return nil
		}
	}

	return cmd.Run(env, cmdArgs)
}

func printHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config FILE        Read configuration from FILE (default: ./vectorui.yaml)")
	fmt.Fprintln(w, "  --trace              Log every interaction state transition")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  VECTORUI_CONFIG      Configuration file (lower priority than --config)")
	fmt.Fprintln(w, "  VECTORUI_*           Override any configuration key, e.g. VECTORUI_WINDOW_WIDTH")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  vectorui render -o gallery.svg   Write the gallery as SVG")
	fmt.Fprintln(w, "  vectorui run                     Drive the gallery from the terminal")
	fmt.Fprintln(w, "  vectorui replay demo.yaml        Replay scripted input")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}

// setup resolves the configuration and builds the gallery in a new window.
// Widget callbacks and, when tracing, state transitions go to out.
func setup(env *Env, out io.Writer) (*config.Resolved, *host.Window, *gallery.Gallery, error) {
	cfg, err := config.Resolve(env.ConfigPath)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := log.New(out, "", 0)
	opts := []host.Option{host.WithTheme(cfg.Theme)}
	if env.Trace || cfg.Trace {
		opts = append(opts, host.WithTrace(logger))
	}
	w := host.New(cfg.Window.Width, cfg.Window.Height, opts...)
	return cfg, w, gallery.Build(w, logger), nil
}
