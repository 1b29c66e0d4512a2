package joint

import "github.com/pkg/errors"

// NewUnknownTypeError is used when a joint type is not in the catalog.
func NewUnknownTypeError(jointType string) error {
	return errors.Errorf("joint type %s not recognized", jointType)
}

// NewMissingAxisError is used when a joint type requires an axis and none was given.
func NewMissingAxisError(jointType Type) error {
	return errors.Errorf("joint type %s requires an axis", jointType)
}

// NewInvalidAxisError is used when an axis label is not one of the three principal axes.
func NewInvalidAxisError(axis string) error {
	return errors.Errorf("axis %q is not one of x, y or z", axis)
}
