package joint

import (
	"strings"

	"github.com/pkg/errors"

	"go.viam.com/mechjoint/torsor"
)

// A Type identifies a supported joint type in the catalog.
type Type string

// The supported joint types.
const (
	Revolute   Type = "revolute"
	Prismatic  Type = "prismatic"
	Fixed      Type = "fixed"
	FixedPoint Type = "fixed_point"
)

// A Definition describes one catalog joint type: its display names, whether
// an axis must be supplied, and the degrees of freedom the type grants.
type Definition struct {
	Type         Type
	FrenchName   string
	AxisRequired bool
	Description  string

	// freedoms lists the kinematic components freed by the joint about a
	// given axis; joint types that lock all coordinates leave it nil.
	freedoms func(axis Axis) []torsor.Component
}

// registeredTypes is the fixed catalog, in display order. Adding a joint type
// means adding an entry here; derivation picks up the entry's freedoms with
// no other changes.
var registeredTypes = []Definition{
	{
		Type:         Revolute,
		FrenchName:   "Pivot",
		AxisRequired: true,
		Description:  "Rotation around a fixed axis",
		freedoms: func(axis Axis) []torsor.Component {
			return []torsor.Component{axis.rotation()}
		},
	},
	{
		Type:         Prismatic,
		FrenchName:   "Glissière",
		AxisRequired: true,
		Description:  "Translation along a fixed axis",
		freedoms: func(axis Axis) []torsor.Component {
			return []torsor.Component{axis.translation()}
		},
	},
	{
		Type:        Fixed,
		FrenchName:  "Encastrement",
		Description: "No relative motion",
	},
	{
		Type:        FixedPoint,
		FrenchName:  "Appui ponctuel",
		Description: "Point contact without motion",
	},
}

var typesByName map[string]Definition

func init() {
	typesByName = make(map[string]Definition, len(registeredTypes))
	for _, def := range registeredTypes {
		if _, ok := typesByName[string(def.Type)]; ok {
			panic(errors.Errorf("joint type %s registered twice", def.Type))
		}
		typesByName[string(def.Type)] = def
	}
}

// LookupType finds the definition for a joint type name, matching names
// case-insensitively.
func LookupType(name string) (Definition, error) {
	def, ok := typesByName[strings.ToLower(name)]
	if !ok {
		return Definition{}, NewUnknownTypeError(name)
	}
	return def, nil
}

// Types returns the catalog of joint type definitions in display order.
func Types() []Definition {
	defs := make([]Definition, len(registeredTypes))
	copy(defs, registeredTypes)
	return defs
}

// kinematic derives the degrees-of-freedom torsor the definition grants
// about an axis: every coordinate starts constrained and each freed
// component is marked free. The axis must already be validated.
func (d Definition) kinematic(axis Axis) torsor.Torsor {
	var k torsor.Torsor
	if d.freedoms == nil {
		return k
	}
	for _, c := range d.freedoms(axis) {
		k[c] = torsor.Free
	}
	return k
}
