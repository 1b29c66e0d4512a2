// Package joint models the idealized mechanical joints used in rigid-body
// mechanics and derives, for each one, its kinematic degrees-of-freedom
// torsor and the complementary static load-transmission torsor. Useful for
// reading off which generalized loads a connection can carry: a coordinate
// that is kinematically free transmits no load, and a constrained one
// transmits exactly a unit load, under the frictionless joint assumption.
package joint

import (
	"encoding/json"
	"fmt"

	"go.viam.com/mechjoint/torsor"
)

// A Joint is an idealized mechanical connection between two rigid bodies,
// defined at a point. Its kinematic torsor records which generalized
// coordinates permit relative motion and its static torsor records the dual
// load-transmission pattern. Both are derived at construction and a Joint is
// immutable thereafter; modeling a different joint means constructing a new
// one.
type Joint struct {
	jointType Type
	axis      Axis
	kinematic torsor.Torsor
	static    torsor.Torsor
}

// New validates a joint type and axis selection against the catalog and
// derives the joint's torsor pair. Type names match case-insensitively. An
// empty axis means none was given; an axis given to a type that does not use
// one is validated and then dropped.
func New(jointType, axis string) (*Joint, error) {
	def, err := LookupType(jointType)
	if err != nil {
		return nil, err
	}

	var parsed Axis
	if axis != "" {
		if parsed, err = ParseAxis(axis); err != nil {
			return nil, err
		}
	}
	if def.AxisRequired && parsed == "" {
		return nil, NewMissingAxisError(def.Type)
	}
	if !def.AxisRequired {
		parsed = ""
	}

	kinematic := def.kinematic(parsed)
	return &Joint{
		jointType: def.Type,
		axis:      parsed,
		kinematic: kinematic,
		static:    kinematic.Complement(),
	}, nil
}

// Type returns the joint's resolved catalog type.
func (j *Joint) Type() Type {
	return j.jointType
}

// Axis returns the joint's axis, empty for types that do not take one.
func (j *Joint) Axis() Axis {
	return j.axis
}

// KinematicTorsor returns the degrees-of-freedom torsor: 1 where relative
// motion is allowed about or along a coordinate, 0 where it is constrained.
func (j *Joint) KinematicTorsor() torsor.Torsor {
	return j.kinematic
}

// StaticTorsor returns the transmissible-load torsor, the entrywise
// complement of the kinematic torsor.
func (j *Joint) StaticTorsor() torsor.Torsor {
	return j.static
}

func (j *Joint) String() string {
	if j.axis == "" {
		return fmt.Sprintf("%s joint", j.jointType)
	}
	return fmt.Sprintf("%s joint (axis %s)", j.jointType, j.axis)
}

// jointConfig is the JSON form of a Joint.
type jointConfig struct {
	Type      Type          `json:"type"`
	Axis      Axis          `json:"axis,omitempty"`
	Kinematic torsor.Torsor `json:"kinematic"`
	Static    torsor.Torsor `json:"static"`
}

// MarshalJSON renders the joint with both derived torsors, unresolved
// entries as null.
func (j *Joint) MarshalJSON() ([]byte, error) {
	return json.Marshal(jointConfig{
		Type:      j.jointType,
		Axis:      j.axis,
		Kinematic: j.kinematic,
		Static:    j.static,
	})
}
