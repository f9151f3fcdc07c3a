package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-drift/vessel/pkg/render/raster"
	"github.com/go-drift/vessel/pkg/text"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the demo gallery to a PNG file",
		Long: `Render the demo gallery with the software rasterizer.

The gallery is built from the resolved configuration, laid out at the window
size and rasterized at the given scale. Each --tap clicks at a logical
position and re-renders before the image is written.

Flags:
  -o, --output FILE  Output file (default: vessel.png)
  --width W          Logical width (default: window.width)
  --height H         Logical height (default: window.height)
  --scale S          Device pixel ratio (default: 1)
  --tap X,Y          Click at X,Y before writing; may repeat`,
		Usage: "vessel render [-o FILE] [--width W] [--height H] [--scale S] [--tap X,Y]...",
		Run:   runRender,
	})
}

func runRender(env *Env, args []string) error {
	flags := defaultViewFlags(env)
	output := "vessel.png"
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
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", args[i])
			}
			output = args[i+1]
			i += 2
		default:
			return fmt.Errorf("unknown render flag %q", args[i])
		}
	}

	shaper, err := text.NewFaceShaper(nil)
	if err != nil {
		return err
	}
	workers := env.Config.Render.Workers
	if !env.Config.Render.ParallelGroups {
		workers = 1
	}
	r, err := raster.New(raster.WithWorkers(workers), raster.WithShaper(shaper))
	if err != nil {
		return err
	}

	s := newSession(env, flags.size(), flags.scale, r, shaper)
	defer s.driver.Close()
	if err := flags.run(context.Background(), s); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	b := r.Image().Bounds()
	fmt.Fprintf(env.Stdout, "Wrote %s (%dx%d, %d frames)\n", output, b.Dx(), b.Dy(), r.Frames())
	return nil
}
