// Package torsor implements the six-component generalized vectors that
// describe the kinematics and statics of a mechanical joint.
package torsor

import (
	"strings"

	"github.com/pkg/errors"
)

// NumComponents is the number of generalized coordinates in a torsor, three
// rotational followed by three translational.
const NumComponents = 6

// A Value is the state of one torsor coordinate. The numeral reading follows
// the kinematic convention: 1 means the coordinate is a degree of freedom, 0
// means it is constrained. Unresolved marks an entry whose state is not
// determined by the joint definition.
type Value int

// The three possible states of a torsor coordinate.
const (
	Constrained Value = iota
	Free
	Unresolved
)

// Complement returns the dual state of the value: a free coordinate carries
// no load and a constrained coordinate carries a unit load. Unresolved
// entries stay unresolved.
func (v Value) Complement() Value {
	switch v {
	case Constrained:
		return Free
	case Free:
		return Constrained
	default:
		return Unresolved
	}
}

func (v Value) String() string {
	switch v {
	case Constrained:
		return "0"
	case Free:
		return "1"
	default:
		return "?"
	}
}

// MarshalJSON renders resolved values as their numerals and unresolved ones as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v {
	case Constrained:
		return []byte("0"), nil
	case Free:
		return []byte("1"), nil
	case Unresolved:
		return []byte("null"), nil
	default:
		return nil, errors.Errorf("torsor value %d out of range", int(v))
	}
}

// UnmarshalJSON parses the same 0, 1 or null forms MarshalJSON produces.
func (v *Value) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0":
		*v = Constrained
	case "1":
		*v = Free
	case "null":
		*v = Unresolved
	default:
		return errors.Errorf("torsor value %s is not 0, 1 or null", string(data))
	}
	return nil
}

// A Component indexes one generalized coordinate of a torsor.
type Component int

// The six generalized coordinates, in torsor order.
const (
	OmegaX Component = iota
	OmegaY
	OmegaZ
	VX
	VY
	VZ
)

var (
	kinematicLabels = [NumComponents]string{"Omega_x", "Omega_y", "Omega_z", "V_x", "V_y", "V_z"}
	staticLabels    = [NumComponents]string{"M_x", "M_y", "M_z", "F_x", "F_y", "F_z"}
)

// KinematicLabel returns the coordinate's label in the kinematic reading, an
// angular or a linear velocity.
func (c Component) KinematicLabel() string {
	return kinematicLabels[c]
}

// StaticLabel returns the coordinate's label in the static reading, a moment
// or a force.
func (c Component) StaticLabel() string {
	return staticLabels[c]
}

// A Torsor is a fixed-length vector of six coordinate states, ordered
// rotation about x, y, z then translation along x, y, z.
type Torsor [NumComponents]Value

// Complement derives the dual torsor entrywise. A kinematic torsor's
// complement is the static torsor of the same joint.
func (t Torsor) Complement() Torsor {
	var dual Torsor
	for i, v := range t {
		dual[i] = v.Complement()
	}
	return dual
}

// Resolved reports whether every coordinate is a determined 0 or 1.
func (t Torsor) Resolved() bool {
	for _, v := range t {
		if v == Unresolved {
			return false
		}
	}
	return true
}

func (t Torsor) String() string {
	entries := make([]string, 0, NumComponents)
	for _, v := range t {
		entries = append(entries, v.String())
	}
	return "[" + strings.Join(entries, " ") + "]"
}
