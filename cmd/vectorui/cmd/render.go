package cmd

import (
	"fmt"
	"io"
	"os"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the widget gallery as SVG",
		Long: `Build the widget gallery and write the surface as an SVG document.

The output goes to the file given with -o, else to output.svg from the
configuration, else to stdout.

Flags:
  -o, --output FILE  Write the SVG to FILE`,
		Usage: "vectorui render [-o FILE]",
		Run:   runRender,
	})
}

func runRender(env *Env, args []string) error {
	var output string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", args[i])
			}
			output = args[i+1]
			i++
		default:
			return fmt.Errorf("unexpected argument %q", args[i])
		}
	}

	cfg, w, _, err := setup(env, env.Stderr)
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Output.SVG
	}
	return writeSVG(env.Stdout, output, w.WriteSVG)
}

// writeSVG writes through write to path, or to stdout when path is empty.
func writeSVG(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
