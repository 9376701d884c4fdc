package cmd

import (
	"fmt"
	"log"

	"github.com/go-drift/vectorui/cmd/vectorui/internal/config"
	"github.com/go-drift/vectorui/cmd/vectorui/internal/gallery"
	"github.com/go-drift/vectorui/cmd/vectorui/internal/tui"
	"github.com/go-drift/vectorui/pkg/host"
)

const runLogLines = 12

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Drive the widget gallery from the terminal",
		Long: `Show the widget gallery in the terminal and route mouse and keyboard
input to it.

Each widget is drawn as character cells; the panel on the right lists
every widget with its interaction state and the most recent callbacks.

Keys:
  tab, shift+tab   Move keyboard focus
  arrows           Move focus to the nearest widget in that direction
  space, enter     Activate the focused widget
  q, ctrl+c        Quit`,
		Usage: "vectorui run",
		Run:   runRun,
	})
}

func runRun(env *Env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	cfg, err := config.Resolve(env.ConfigPath)
	if err != nil {
		return err
	}

	lines := tui.NewLog(runLogLines)
	logger := log.New(lines, "", 0)
	opts := []host.Option{host.WithTheme(cfg.Theme)}
	if env.Trace || cfg.Trace {
		opts = append(opts, host.WithTrace(logger))
	}
	w := host.New(cfg.Window.Width, cfg.Window.Height, opts...)
	g := gallery.Build(w, logger)
	return tui.Run(tui.New(w, g, lines))
}
