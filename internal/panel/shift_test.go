package panel

import (
	"strings"
	"testing"
)

func TestShift_ClampAndInactive(t *testing.T) {
	long := strings.Repeat("x", 40)
	p := newTestPanel(t, entries(long, "short"), Options{})
	p.Rows()

	if p.Shift != -1 {
		t.Fatalf("expected inactive shift, got %d", p.Shift)
	}
	p.ScrollContentLeft()
	if p.Shift != -1 {
		t.Errorf("expected left at inactive to stay -1, got %d", p.Shift)
	}

	max := p.maxContentShift()
	if max <= 0 {
		t.Fatalf("expected a positive max shift for a long name, got %d", max)
	}
	for i := 0; i < max+10; i++ {
		p.ScrollContentRight()
	}
	if p.Shift != max {
		t.Errorf("expected shift clamped to %d, got %d", max, p.Shift)
	}

	p.ScrollContentLeft()
	if p.Shift != max-1 {
		t.Errorf("expected %d after one left, got %d", max-1, p.Shift)
	}
}

func TestShift_RightFromInactive(t *testing.T) {
	long := strings.Repeat("y", 40)
	p := newTestPanel(t, entries(long), Options{})
	p.Rows()

	p.ScrollContentRight()
	if p.Shift != 0 {
		t.Errorf("expected first right to activate at 0, got %d", p.Shift)
	}
}

func TestShift_ResetOnReload(t *testing.T) {
	long := strings.Repeat("z", 40)
	p := newTestPanel(t, entries(long), Options{})
	p.Rows()
	p.ScrollContentRight()
	p.ScrollContentRight()
	if err := p.Load(); err != nil {
		t.Fatal(err)
	}
	if p.Shift != -1 {
		t.Errorf("expected shift reset on reload, got %d", p.Shift)
	}
}

func TestShift_RowsApplyShift(t *testing.T) {
	p := newTestPanel(t, entries("abcdefghijklmnopqrstuvwxyz0123456789abcd"), Options{})
	p.Rows()
	// From inactive: first press activates at 0, the next two shift.
	p.ScrollContentRight()
	p.ScrollContentRight()
	p.ScrollContentRight()

	rows := p.Rows()
	found := false
	for _, r := range rows {
		if strings.Contains(r.Text, "cdefghij") {
			found = true
		}
	}
	if !found {
		t.Error("expected shifted name in rendered rows")
	}
}
