package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Has(ActionUp) = false after Set")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) = true, only ActionUp was set")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-value frame must be safe to query and set
	var f InputFrame

	if f.Has(ActionDown) {
		t.Error("zero-value frame should have no actions")
	}

	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero-value frame should work")
	}
}

func TestInputFramePointerLastWriterWins(t *testing.T) {
	f := NewInputFrame()

	if _, ok := f.Pointer(); ok {
		t.Error("new frame should have no pointer")
	}

	f.SetPointer(100)
	f.SetPointer(250)

	y, ok := f.Pointer()
	if !ok {
		t.Fatal("Pointer() ok = false after SetPointer")
	}
	if y != 250 {
		t.Errorf("Pointer() = %d, expected last write 250", y)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionDown)
	f.SetPointer(42)

	f.Clear()

	if f.Has(ActionUp) || f.Has(ActionDown) {
		t.Error("Clear should remove all actions")
	}
	if _, ok := f.Pointer(); ok {
		t.Error("Clear should remove the pointer")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.SetPointer(7)

	clone := f.Clone()
	clone.Set(ActionDown)

	if !clone.Has(ActionUp) {
		t.Error("clone should carry actions")
	}
	if y, ok := clone.Pointer(); !ok || y != 7 {
		t.Error("clone should carry the pointer")
	}
	if f.Has(ActionDown) {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
