// Package cli contains all business logic needed by the CLI command.
package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.viam.com/utils"

	"go.viam.com/mechjoint/joint"
	"go.viam.com/mechjoint/torsor"
)

// ListTypesAction is the corresponding Action for 'list'. It renders the
// joint type catalog.
func ListTypesAction(c *cli.Context) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Type", "French Name", "Description", "Axis"})
	for _, def := range joint.Types() {
		axisInfo := "no axis"
		if def.AxisRequired {
			axisInfo = "axis required"
		}
		t.AppendRow([]interface{}{string(def.Type), def.FrenchName, def.Description, axisInfo})
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

// DeriveAction is the corresponding Action for 'derive'. It constructs one
// joint and renders its torsor pair.
func DeriveAction(c *cli.Context) error {
	jointType := c.Args().First()
	if jointType == "" {
		return errors.New("joint type argument required")
	}
	j, err := joint.New(jointType, c.Args().Get(1))
	if err != nil {
		return err
	}
	logger.Debugw("derived torsors", "type", j.Type(), "axis", j.Axis())

	if c.Bool(jsonFlag) {
		return printJSON(c.App.Writer, j)
	}
	printJointTorsors(c.App.Writer, j)
	return nil
}

// BatchAction is the corresponding Action for 'batch'. It parses a JSON5
// array of joint requests and derives all of them in parallel.
func BatchAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("request file argument required")
	}
	//nolint:gosec
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(file.Close)

	var reqs []joint.Request
	if err := json5.NewDecoder(file).Decode(&reqs); err != nil {
		return errors.Wrapf(err, "could not parse %s", path)
	}
	logger.Debugw("parsed joint requests", "count", len(reqs))

	joints, err := joint.NewInParallel(c.Context, reqs)
	if err != nil {
		return err
	}
	if c.Bool(jsonFlag) {
		return printJSON(c.App.Writer, joints)
	}
	for i, j := range joints {
		if i != 0 {
			printf(c.App.Writer, "")
		}
		printJointTorsors(c.App.Writer, j)
	}
	return nil
}

// printJointTorsors prints out a table of the joint's torsor pair, with the
// kinematic and static coordinate labels side by side.
func printJointTorsors(w io.Writer, j *joint.Joint) {
	printf(w, "Mechanical joint type : %s", j.Type())
	if axis := j.Axis(); axis != "" {
		printf(w, "Axis : %s", axis)
	}
	k, s := j.KinematicTorsor(), j.StaticTorsor()
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Kinematic (DOF)", "Value", "Static (load)", "Value"})
	for i := 0; i < torsor.NumComponents; i++ {
		component := torsor.Component(i)
		t.AppendRow([]interface{}{
			component.KinematicLabel(),
			k[i].String(),
			component.StaticLabel(),
			s[i].String(),
		})
	}
	printf(w, "%s", t.Render())
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	printf(w, "%s", string(data))
	return nil
}
