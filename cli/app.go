package cli

import (
	"fmt"
	"io"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	debugFlag = "debug"
	jsonFlag  = "json"
)

var logger golog.Logger = zap.NewNop().Sugar()

var app = &cli.App{
	Name:            "mechjoint",
	Usage:           "derive the torsors of idealized mechanical joints",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    debugFlag,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Before: func(c *cli.Context) error {
		if c.Bool(debugFlag) {
			logger = golog.NewDebugLogger("cli")
		} else {
			logger = zap.NewNop().Sugar()
		}

		return nil
	},
	Commands: []*cli.Command{
		{
			Name:   "list",
			Usage:  "list the supported mechanical joint types",
			Action: ListTypesAction,
		},
		{
			Name:      "derive",
			Usage:     "derive the kinematic and static torsors of a joint",
			ArgsUsage: "<joint type> [axis]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  jsonFlag,
					Usage: "print the joint as JSON",
				},
			},
			Action: DeriveAction,
		},
		{
			Name:      "batch",
			Usage:     "derive the torsors of every joint listed in a JSON5 file",
			ArgsUsage: "<requests.json5>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  jsonFlag,
					Usage: "print the joints as JSON",
				},
			},
			Action: BatchAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

func printf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format+"\n", a...)
}
