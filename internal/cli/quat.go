package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akmonengine/spatial/rotation"
)

type QuatOptions struct {
	Axis   string
	Angle  float64
	Rotate string
}

// NewQuatCommand builds a rotation quaternion from an axis and an angle.
func NewQuatCommand(root *RootOptions) *cobra.Command {
	opts := &QuatOptions{}

	cmd := &cobra.Command{
		Use:   "quat",
		Short: "Build a rotation quaternion from an axis and an angle",
		Example: `  spatial quat --axis 0,1,0 --angle 90 --units deg
  spatial quat --axis 1,0,0 --angle 1.5708 --rotate 0,1,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(func() error { return runQuat(cmd, root, opts) })
		},
	}

	cmd.Flags().StringVar(&opts.Axis, "axis", "0,1,0", "rotation axis as x,y,z")
	cmd.Flags().Float64Var(&opts.Angle, "angle", 0, "rotation angle in the configured units")
	cmd.Flags().StringVar(&opts.Rotate, "rotate", "", "optional x,y,z vector to rotate")

	return cmd
}

func runQuat(cmd *cobra.Command, root *RootOptions, opts *QuatOptions) error {
	axis, err := parseVec3(opts.Axis)
	if err != nil {
		return fmt.Errorf("--axis: %w", err)
	}
	q, err := rotation.FromAxisAngle(root.toRadians(opts.Angle), axis)
	if err != nil {
		return fmt.Errorf("--axis: %w", err)
	}
	root.Logger.Debug("quaternion built",
		zap.Stringer("axis", axis),
		zap.Float64("angle", opts.Angle),
		zap.Stringer("quaternion", q),
	)

	angles := q.ToEulerAngles()
	r := report{}.
		add("quaternion", []float64{q.A(), q.B(), q.C(), q.D()}).
		add("norm", q.Norm()).
		add("left", q.Left()).
		add("up", q.Up()).
		add("forward", q.Forward()).
		add("euler", []float64{
			root.fromRadians(angles.Pitch),
			root.fromRadians(angles.Yaw),
			root.fromRadians(angles.Roll),
		}).
		add("rotation_matrix", q.ToRotationMatrix())

	if opts.Rotate != "" {
		v, err := parseVec3(opts.Rotate)
		if err != nil {
			return fmt.Errorf("--rotate: %w", err)
		}
		r = r.add("rotated", q.Rotate(v))
	}

	return root.printer(cmd).print(r)
}
