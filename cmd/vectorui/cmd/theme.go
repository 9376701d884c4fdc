package cmd

import (
	"fmt"

	"github.com/go-drift/vectorui/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Validate or print theme files",
		Long: `Work with theme files.

Subcommands:
  validate FILE    Load FILE (.yaml, .yml or .toml) and report problems
  dump [FORMAT]    Print the default theme as yaml (default) or toml`,
		Usage: "vectorui theme <validate FILE | dump [yaml|toml]>",
		Run:   runTheme,
	})
}

func runTheme(env *Env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("theme subcommand is required (validate or dump)")
	}
	switch args[0] {
	case "validate":
		if len(args) != 2 {
			return fmt.Errorf("usage: vectorui theme validate FILE")
		}
		t, err := theme.Load(args[1])
		if err != nil {
			return err
		}
		name := t.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(env.Stdout, "%s: ok, theme %s, format %s\n", args[1], name, t.Version)
		return nil
	case "dump":
		format := theme.FormatYAML
		if len(args) > 1 {
			switch args[1] {
			case "yaml", "yml":
			case "toml":
				format = theme.FormatTOML
			default:
				return fmt.Errorf("unknown theme format %q", args[1])
			}
		}
		data, err := theme.Default().Encode(format)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown theme subcommand %q", args[0])
	}
}
