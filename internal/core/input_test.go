package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionFire)
	f.Axes = Axes{Turn: 0.8, Thrust: -1}
	if !f.Has(ActionFire) {
		t.Error("Has(Fire) should be true after Set")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) || f.Axes != (Axes{}) {
		t.Error("Clear should reset actions and axes")
	}
	if !clone.Has(ActionFire) || clone.Axes.Turn != 0.8 {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionThrust.String() != "Thrust" {
		t.Errorf("ActionThrust.String() = %q", ActionThrust.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
	if StatusLingering.String() != "lingering" {
		t.Errorf("StatusLingering.String() = %q", StatusLingering.String())
	}
}
