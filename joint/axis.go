package joint

import (
	"github.com/golang/geo/r3"

	"go.viam.com/mechjoint/torsor"
)

// An Axis identifies one of the three principal axes of the joint's local
// coordinate frame.
type Axis string

// The three principal axes.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// ParseAxis converts an axis label to an Axis. Labels are matched exactly;
// nothing other than x, y and z is accepted.
func ParseAxis(label string) (Axis, error) {
	switch axis := Axis(label); axis {
	case AxisX, AxisY, AxisZ:
		return axis, nil
	default:
		return "", NewInvalidAxisError(label)
	}
}

// Vector returns the unit vector pointing along the axis.
func (a Axis) Vector() r3.Vector {
	switch a {
	case AxisX:
		return r3.Vector{X: 1}
	case AxisY:
		return r3.Vector{Y: 1}
	case AxisZ:
		return r3.Vector{Z: 1}
	default:
		return r3.Vector{}
	}
}

// rotation returns the angular velocity component about the axis.
func (a Axis) rotation() torsor.Component {
	switch a {
	case AxisY:
		return torsor.OmegaY
	case AxisZ:
		return torsor.OmegaZ
	default:
		return torsor.OmegaX
	}
}

// translation returns the linear velocity component along the axis.
func (a Axis) translation() torsor.Component {
	switch a {
	case AxisY:
		return torsor.VY
	case AxisZ:
		return torsor.VZ
	default:
		return torsor.VX
	}
}
