package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akmonengine/spatial/rotation"
)

// orderTolerance is the absolute tolerance used to compare the two composition orders.
const orderTolerance = 1e-9

type EulerOptions struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// NewEulerCommand shows the rotation described by a set of Euler angles.
func NewEulerCommand(root *RootOptions) *cobra.Command {
	opts := &EulerOptions{}

	cmd := &cobra.Command{
		Use:   "euler",
		Short: "Convert Euler angles to a quaternion, a direction and matrices",
		Example: `  spatial euler --yaw 90 --units deg
  spatial euler --pitch 0.3 --yaw 0.2 --roll 0.1 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(func() error { return runEuler(cmd, root, opts) })
		},
	}

	cmd.Flags().Float64Var(&opts.Pitch, "pitch", 0, "rotation about X in the configured units")
	cmd.Flags().Float64Var(&opts.Yaw, "yaw", 0, "rotation about Y in the configured units")
	cmd.Flags().Float64Var(&opts.Roll, "roll", 0, "rotation about Z in the configured units")

	return cmd
}

func runEuler(cmd *cobra.Command, root *RootOptions, opts *EulerOptions) error {
	angles := rotation.Euler(
		root.toRadians(opts.Pitch),
		root.toRadians(opts.Yaw),
		root.toRadians(opts.Roll),
	)
	q := angles.ToRotationQuaternion()
	rot := angles.ToRotationMatrix()
	tr := angles.Transform()
	agree := rot.ApproxEqual(tr, orderTolerance)

	root.Logger.Debug("euler angles converted",
		zap.Stringer("angles", angles),
		zap.Stringer("quaternion", q),
		zap.Bool("orders_agree", agree),
	)

	r := report{}.
		add("quaternion", []float64{q.A(), q.B(), q.C(), q.D()}).
		add("direction", angles.ToDirectionVector()).
		add("rotation_matrix", rot).
		add("transform_matrix", tr).
		add("orders_agree", agree)

	return root.printer(cmd).print(r)
}
