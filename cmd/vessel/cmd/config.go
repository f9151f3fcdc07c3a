package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration every other command runs with.

Settings come from --config, or from vessel.yaml, vessel.yml or vessel.toml at
the module root, over the built-in defaults. An unset window title defaults
to the module name.

Flags:
  --toml             Print TOML instead of YAML`,
		Usage: "vessel config [--toml]",
		Run:   runConfig,
	})
}

func runConfig(env *Env, args []string) error {
	asTOML := false
	for _, arg := range args {
		switch arg {
		case "--toml":
			asTOML = true
		default:
			return fmt.Errorf("unknown config flag %q", arg)
		}
	}

	var (
		data []byte
		err  error
	)
	if asTOML {
		data, err = env.Config.EncodeTOML()
	} else {
		data, err = env.Config.EncodeYAML()
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
