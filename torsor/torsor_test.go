package torsor

import (
	"encoding/json"
	"testing"

	"go.viam.com/test"
)

func TestValueComplement(t *testing.T) {
	test.That(t, Constrained.Complement(), test.ShouldEqual, Free)
	test.That(t, Free.Complement(), test.ShouldEqual, Constrained)
	test.That(t, Unresolved.Complement(), test.ShouldEqual, Unresolved)
}

func TestValueString(t *testing.T) {
	test.That(t, Constrained.String(), test.ShouldEqual, "0")
	test.That(t, Free.String(), test.ShouldEqual, "1")
	test.That(t, Unresolved.String(), test.ShouldEqual, "?")
}

func TestTorsorComplement(t *testing.T) {
	testCases := []struct {
		name      string
		kinematic Torsor
		static    Torsor
	}{
		{"prismatic y", Torsor{0, 0, 0, 0, 1, 0}, Torsor{1, 1, 1, 1, 0, 1}},
		{"revolute z", Torsor{0, 0, 1, 0, 0, 0}, Torsor{1, 1, 0, 1, 1, 1}},
		{"locked", Torsor{}, Torsor{1, 1, 1, 1, 1, 1}},
		{
			"unresolved entries pass through",
			Torsor{Unresolved, 0, 1, 0, 0, Unresolved},
			Torsor{Unresolved, 1, 0, 1, 1, Unresolved},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test.That(t, tc.kinematic.Complement(), test.ShouldResemble, tc.static)
			test.That(t, tc.static.Complement(), test.ShouldResemble, tc.kinematic)
		})
	}
}

func TestComplementLaw(t *testing.T) {
	kinematics := []Torsor{
		{},
		{1, 1, 1, 1, 1, 1},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{1, 0, 1, 0, 1, 0},
	}
	for _, k := range kinematics {
		dual := k.Complement()
		for i := range k {
			test.That(t, int(dual[i]), test.ShouldEqual, 1-int(k[i]))
		}
		test.That(t, dual.Complement(), test.ShouldResemble, k)
	}
}

func TestResolved(t *testing.T) {
	test.That(t, Torsor{}.Resolved(), test.ShouldBeTrue)
	test.That(t, Torsor{1, 1, 1, 1, 1, 1}.Resolved(), test.ShouldBeTrue)
	test.That(t, Torsor{0, Unresolved, 0, 0, 0, 0}.Resolved(), test.ShouldBeFalse)
}

func TestComponentLabels(t *testing.T) {
	kinematic := []string{"Omega_x", "Omega_y", "Omega_z", "V_x", "V_y", "V_z"}
	static := []string{"M_x", "M_y", "M_z", "F_x", "F_y", "F_z"}
	for i := 0; i < NumComponents; i++ {
		test.That(t, Component(i).KinematicLabel(), test.ShouldEqual, kinematic[i])
		test.That(t, Component(i).StaticLabel(), test.ShouldEqual, static[i])
	}
	test.That(t, VY.KinematicLabel(), test.ShouldEqual, "V_y")
	test.That(t, VY.StaticLabel(), test.ShouldEqual, "F_y")
}

func TestTorsorString(t *testing.T) {
	test.That(t, Torsor{0, 0, 0, 0, 1, 0}.String(), test.ShouldEqual, "[0 0 0 0 1 0]")
	test.That(t, Torsor{Unresolved, 1, 0, 0, 0, 0}.String(), test.ShouldEqual, "[? 1 0 0 0 0]")
}

func TestTorsorJSON(t *testing.T) {
	data, err := json.Marshal(Torsor{0, 0, 0, 0, 1, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, "[0,0,0,0,1,0]")

	data, err = json.Marshal(Torsor{Unresolved, 0, 1, 0, 0, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, "[null,0,1,0,0,0]")

	var parsed Torsor
	err = json.Unmarshal([]byte("[1,1,0,1,1,1]"), &parsed)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parsed, test.ShouldResemble, Torsor{1, 1, 0, 1, 1, 1})

	parsed = Torsor{}
	err = json.Unmarshal([]byte("[null,0,1,0,0,0]"), &parsed)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parsed, test.ShouldResemble, Torsor{Unresolved, 0, 1, 0, 0, 0})

	err = json.Unmarshal([]byte("[2,0,0,0,0,0]"), &parsed)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not 0, 1 or null")

	_, err = json.Marshal(Value(7))
	test.That(t, err, test.ShouldNotBeNil)
}
