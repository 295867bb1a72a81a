// Package cli contains the quat command line tool for poking at quaternion math.
package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"go.viam.com/ikmath/logging"
	"go.viam.com/ikmath/spatialmath"
)

const (
	// Flags.
	generalFlagDebug = "debug"
	flagAxis         = "axis"

	defaultAxis = "0,0,0,1"

	unaryArgsUsage  = "<r> <i> <j> <k>"
	binaryArgsUsage = "<r> <i> <j> <k> <r> <i> <j> <k>"
)

// NewApp returns a new app with the quat commands, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return newApp(out, errOut, &quatCommands{})
}

// newApp builds the app around qc. When qc has no logger one is picked from the debug flag.
// Errors are always returned from Run, never turned into an exit.
func newApp(out, errOut io.Writer, qc *quatCommands) *cli.App {
	return &cli.App{
		Name:            "quat",
		Usage:           "evaluate quaternion operations; put -- before negative components",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		ExitErrHandler:  func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				EnvVars: []string{"QUAT_DEBUG"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if qc.logger != nil {
				return nil
			}
			if c.Bool(generalFlagDebug) {
				qc.logger = logging.NewDebugLogger("quat")
			} else {
				qc.logger = logging.NewLogger("quat")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "mul",
				Usage:     "hamilton product a * b",
				ArgsUsage: binaryArgsUsage,
				Action: qc.binary("mul", func(a, b spatialmath.Quaternion) string {
					return a.Mul(b).String()
				}),
			},
			{
				Name:      "add",
				Usage:     "componentwise sum a + b",
				ArgsUsage: binaryArgsUsage,
				Action: qc.binary("add", func(a, b spatialmath.Quaternion) string {
					return a.Add(b).String()
				}),
			},
			{
				Name:      "sub",
				Usage:     "componentwise difference a - b",
				ArgsUsage: binaryArgsUsage,
				Action: qc.binary("sub", func(a, b spatialmath.Quaternion) string {
					return a.Sub(b).String()
				}),
			},
			{
				Name:      "dot",
				Usage:     "four dimensional dot product of a and b",
				ArgsUsage: binaryArgsUsage,
				Action: qc.binary("dot", func(a, b spatialmath.Quaternion) string {
					return formatFloat32(a.Dot(b))
				}),
			},
			{
				Name:      "angle",
				Usage:     "angle in degrees between a and b",
				ArgsUsage: binaryArgsUsage,
				Action: qc.binary("angle", func(a, b spatialmath.Quaternion) string {
					return formatFloat64(a.AngleBetween(b))
				}),
			},
			{
				Name:      "relative",
				Usage:     "angle in degrees from a to b in [0, 360), directed around an axis",
				ArgsUsage: binaryArgsUsage,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagAxis,
						Value: defaultAxis,
						Usage: "rotation axis as comma separated `r,i,j,k`",
					},
				},
				Action: qc.relative,
			},
			{
				Name:      "conj",
				Usage:     "conjugate of a",
				ArgsUsage: unaryArgsUsage,
				Action: qc.unary("conj", func(a spatialmath.Quaternion) string {
					return a.Conj().String()
				}),
			},
			{
				Name:      "normalize",
				Usage:     "a scaled to unit length",
				ArgsUsage: unaryArgsUsage,
				Action: qc.unary("normalize", func(a spatialmath.Quaternion) string {
					return a.Normalized().String()
				}),
			},
			{
				Name:      "length",
				Usage:     "euclidean norm of a",
				ArgsUsage: unaryArgsUsage,
				Action: qc.unary("length", func(a spatialmath.Quaternion) string {
					return formatFloat32(a.Length())
				}),
			},
			{
				Name:      "zero",
				Usage:     "a with components below 0.0001 in magnitude snapped to 0",
				ArgsUsage: unaryArgsUsage,
				Action: qc.unary("zero", func(a spatialmath.Quaternion) string {
					return a.Zeroed().String()
				}),
			},
		},
	}
}

type quatCommands struct {
	logger logging.Logger
}

func (qc *quatCommands) unary(op string, f func(a spatialmath.Quaternion) string) cli.ActionFunc {
	return func(c *cli.Context) error {
		quats, err := parseQuaternions(c.Args().Slice(), 1)
		if err != nil {
			return err
		}
		result := f(quats[0])
		qc.logger.Debugw("computed", "op", op, zap.Object("a", quats[0]), "result", result)
		return qc.printResult(c, result)
	}
}

func (qc *quatCommands) binary(op string, f func(a, b spatialmath.Quaternion) string) cli.ActionFunc {
	return func(c *cli.Context) error {
		quats, err := parseQuaternions(c.Args().Slice(), 2)
		if err != nil {
			return err
		}
		result := f(quats[0], quats[1])
		qc.logger.Debugw("computed", "op", op, zap.Object("a", quats[0]), zap.Object("b", quats[1]), "result", result)
		return qc.printResult(c, result)
	}
}

func (qc *quatCommands) relative(c *cli.Context) error {
	axis, err := parseAxis(c.String(flagAxis))
	if err != nil {
		return err
	}
	return qc.binary("relative", func(a, b spatialmath.Quaternion) string {
		return formatFloat64(a.AngleRelativeToAxis(b, axis))
	})(c)
}

func (qc *quatCommands) printResult(c *cli.Context, result string) error {
	_, err := fmt.Fprintln(c.App.Writer, result)
	return err
}
