// Package main runs the quaternion demonstration: arithmetic, norm, conjugate and inverse, equality, and the
// rotation matrix round trip for two quaternions.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/quaternion/logging"
	"go.viam.com/quaternion/spatialmath"
)

const (
	// Flags.
	flagQ1    = "q1"
	flagQ2    = "q2"
	flagDebug = "debug"
)

func main() {
	app := newApp(os.Stdout, logging.NewWriterLogger("quatdemo", logging.INFO, os.Stderr))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer, logger logging.Logger) *cli.App {
	return &cli.App{
		Name:            "quatdemo",
		Usage:           "exercise quaternion arithmetic and rotation matrix conversion",
		HideHelpCommand: true,
		Writer:          out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagQ1,
				Value:   "1 2 3 4",
				EnvVars: []string{"QUATDEMO_Q1"},
				Usage:   "first quaternion as `W X Y Z`",
			},
			&cli.StringFlag{
				Name:    flagQ2,
				Value:   "5 6 7 8",
				EnvVars: []string{"QUATDEMO_Q2"},
				Usage:   "second quaternion as `W X Y Z`",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				EnvVars: []string{"QUATDEMO_DEBUG"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger.SetLevel(logging.DEBUG)
			}
			return nil
		},
		Action: func(c *cli.Context) (err error) {
			defer func() {
				err = multierr.Combine(err, logger.Sync())
			}()

			q1, err := spatialmath.ParseQuaternion(c.String(flagQ1))
			if err != nil {
				return errors.Wrapf(err, "invalid --%s", flagQ1)
			}
			q2, err := spatialmath.ParseQuaternion(c.String(flagQ2))
			if err != nil {
				return errors.Wrapf(err, "invalid --%s", flagQ2)
			}
			logger.Debugw("parsed quaternions", "q1", q1.String(), "q2", q2.String())

			_, err = io.WriteString(c.App.Writer, report(q1, q2, logger))
			return err
		},
	}
}

// report renders every operation on q1 and q2 in the order the demonstration prints them.
func report(q1, q2 spatialmath.Quaternion, logger logging.Logger) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sum: %v\n", spatialmath.Add(q1, q2))
	fmt.Fprintf(&sb, "Difference: %v\n", spatialmath.Sub(q1, q2))
	fmt.Fprintf(&sb, "Product: %v\n", spatialmath.Mul(q1, q2))

	fmt.Fprintf(&sb, "Norm of q1: %v\n", q1.Norm())
	fmt.Fprintf(&sb, "Conjugate of q1: %v\n", q1.Conjugate())
	if inv, err := q1.Inverse(); err != nil {
		logger.Warnw("cannot compute inverse", "q1", q1.String(), "error", err)
		fmt.Fprintf(&sb, "Inverse of q1: %v\n", err)
	} else {
		fmt.Fprintf(&sb, "Inverse of q1: %v\n", inv)
	}

	fmt.Fprintf(&sb, "Are q1 and q2 equal? %t\n", q1.Equal(q2))
	fmt.Fprintf(&sb, "Are q1 and q2 not equal? %t\n", q1.NotEqual(q2))

	rm := q1.RotationMatrix()
	logger.Debugw("rotation matrix", "trace", rm.Trace(), "det", rm.Det())
	fmt.Fprintf(&sb, "Rotation Matrix:\n%v\n", rm)
	fmt.Fprintf(&sb, "Quaternion from Rotation Matrix: %v\n", rm.Quaternion())
	return sb.String()
}
