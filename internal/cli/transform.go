package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akmonengine/spatial"
	"github.com/akmonengine/spatial/transform"
	"github.com/akmonengine/spatial/vector"
)

const (
	targetWorld = "world"
	targetLocal = "local"
)

var errNoFrames = errors.New("at least one --frame is required")

type TransformOptions struct {
	Frames  []string
	To      string
	Workers int
}

// NewTransformCommand converts points through a chain of frames.
func NewTransformCommand(root *RootOptions) *cobra.Command {
	opts := &TransformOptions{}

	cmd := &cobra.Command{
		Use:   "transform --frame P,Y,R@X,Y,Z [--frame ...] POINT...",
		Short: "Convert points between world space and the innermost frame of a chain",
		Long: `Each --frame is pitch,yaw,roll@x,y,z. The first frame is placed in world space,
every following frame is expressed in the space of the one before it.
Points are x,y,z and are converted by the last frame.`,
		Example: `  spatial transform --units deg --frame 0,90,0@1,2,3 --frame 0,0,0@0,0,1 0,0,0
  spatial transform --frame 0,0,0@5,0,0 --to local 5,0,0 6,1,0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(func() error { return runTransform(cmd, root, opts, args) })
		},
	}

	cmd.Flags().StringArrayVar(&opts.Frames, "frame", nil, "frame as pitch,yaw,roll@x,y,z (repeatable, outermost first)")
	cmd.Flags().StringVar(&opts.To, "to", targetWorld, "target space (world|local)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "conversion workers (defaults to the config value)")

	return cmd
}

func runTransform(cmd *cobra.Command, root *RootOptions, opts *TransformOptions, args []string) error {
	if opts.To != targetWorld && opts.To != targetLocal {
		return fmt.Errorf("--to must be %q or %q, got %q", targetWorld, targetLocal, opts.To)
	}

	frame, err := buildChain(opts.Frames, root.toRadians)
	if err != nil {
		return err
	}

	points := make([]vector.Vec3, len(args))
	for i, arg := range args {
		if points[i], err = parseVec3(arg); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	workers := root.Config.Workers
	if opts.Workers > 0 {
		workers = opts.Workers
	}
	root.Logger.Debug("converting points",
		zap.Int("frames", len(opts.Frames)),
		zap.Int("points", len(points)),
		zap.String("to", opts.To),
		zap.Int("workers", workers),
	)

	var converted []vector.Vec3
	if opts.To == targetWorld {
		converted = spatial.ToWorldAll(frame, points, workers)
	} else {
		converted = spatial.ToLocalAll(frame, points, workers)
	}

	r := report{}.add(opts.To, converted)
	return root.printer(cmd).print(r)
}

// buildChain turns frame strings into a World root followed by nested Local frames
// and returns the innermost one.
func buildChain(frames []string, toRadians func(float64) float64) (transform.Transform, error) {
	if len(frames) == 0 {
		return nil, errNoFrames
	}

	var current transform.Transform
	for i, s := range frames {
		f, err := parseFrame(s, toRadians)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			current = transform.WorldFromEuler(f.angles, f.position)
			continue
		}
		local, err := transform.LocalFromEuler(current, f.angles, f.position)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		current = local
	}
	return current, nil
}
