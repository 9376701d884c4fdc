package cmd

import (
	"fmt"

	"github.com/go-drift/vectorui/cmd/vectorui/internal/script"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay scripted input against the widget gallery",
		Long: `Replay a YAML script of pointer and key input against the widget gallery.

Each step is printed as it runs, followed by the callbacks it triggered.
Expect steps check a widget's interaction state; the first failed
expectation stops the replay with an error.

Widget names: button, checkbox, radio1, radio2, radio3, scrollbar,
progress, increment, switch.

Flags:
  -o, --output FILE  Write the final surface as SVG to FILE`,
		Usage: "vectorui replay <script.yaml> [-o FILE]",
		Run:   runReplay,
	})
}

func runReplay(env *Env, args []string) error {
	var path, output string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", args[i])
			}
			output = args[i+1]
			i++
		default:
			if path != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			path = args[i]
		}
	}
	if path == "" {
		return fmt.Errorf("script file is required\n\nUsage: vectorui replay <script.yaml>")
	}

	s, err := script.Load(path)
	if err != nil {
		return err
	}
	_, w, g, err := setup(env, env.Stdout)
	if err != nil {
		return err
	}
	if s.Name != "" {
		fmt.Fprintf(env.Stdout, "Replaying %s\n", s.Name)
	}
	if err := script.NewPlayer(w, g, env.Stdout).Run(s); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "%d steps passed\n", len(s.Steps))
	if output == "" {
		return nil
	}
	return writeSVG(env.Stdout, output, w.WriteSVG)
}
