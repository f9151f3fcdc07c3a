package cmd

import (
	"context"
	"fmt"

	"github.com/go-drift/vessel/pkg/render"
	"github.com/go-drift/vessel/pkg/text"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print the demo gallery's widget tree",
		Long: `Build and lay out the demo gallery and print its widget tree.

Text is measured with the built-in fixed metrics, so no font is loaded.

Flags:
  --commands         Also print the frame's draw commands
  --stats            Also print reconciliation and frame statistics
  --width W          Logical width (default: window.width)
  --height H         Logical height (default: window.height)
  --tap X,Y          Click at X,Y before printing; may repeat`,
		Usage: "vessel tree [--commands] [--stats] [--width W] [--height H] [--tap X,Y]...",
		Run:   runTree,
	})
}

func runTree(env *Env, args []string) error {
	flags := defaultViewFlags(env)
	var commands, stats bool
	for i := 0; i < len(args); {
		n, err := flags.parse(args, i)
		if err != nil {
			return err
		}
		if n > 0 {
			i += n
			continue
		}
		switch args[i] {
		case "--commands":
			commands = true
		case "--stats":
			stats = true
		default:
			return fmt.Errorf("unknown tree flag %q", args[i])
		}
		i++
	}

	out := &lastFrame{}
	s := newSession(env, flags.size(), flags.scale, out, text.BasicShaper{})
	defer s.driver.Close()
	if err := flags.run(context.Background(), s); err != nil {
		return err
	}

	if err := s.driver.Tree().Dump(env.Stdout); err != nil {
		return err
	}
	if commands {
		fmt.Fprintln(env.Stdout)
		for i, g := range out.frame.Groups {
			fmt.Fprintf(env.Stdout, "# group %d\n", i)
			if err := render.Dump(env.Stdout, g); err != nil {
				return err
			}
		}
	}
	if stats {
		st := s.driver.Stats()
		fmt.Fprintln(env.Stdout)
		fmt.Fprintf(env.Stdout, "builds=%d rebuilds=%d teardowns=%d writes=%d\n", st.Builds, st.Rebuilds, st.Teardowns, st.Writes)
		for _, sample := range s.driver.Timings().Samples() {
			fmt.Fprintf(env.Stdout, "frame rebuilt=%t widgets=%d commands=%d groups=%d total=%s\n",
				sample.Rebuilt, sample.Widgets, sample.Commands, sample.Groups, sample.Phases.Total())
		}
	}
	return nil
}
