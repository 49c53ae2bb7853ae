package tabs

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
)

type fakeHost struct {
	dir  string
	fail bool
	cds  []string
}

func (h *fakeHost) Dir() string { return h.dir }

func (h *fakeHost) ChangeDir(dir string) error {
	if h.fail {
		return fmt.Errorf("read directory %s: not found", dir)
	}
	h.dir = dir
	h.cds = append(h.cds, dir)
	return nil
}

func testLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testManager(t *testing.T) (*Manager, *fakeHost, *fakeHost) {
	t.Helper()
	a := &fakeHost{dir: "/left"}
	b := &fakeHost{dir: "/right"}
	m := NewManager(testLog(), a, b, Options{MaxTitleLength: 32})
	return m, a, b
}

func TestManager_NewTabInheritsDir(t *testing.T) {
	m, a, _ := testManager(t)
	a.dir = "/left/sub"
	m.NewTab(0)

	r := m.Ring(0)
	if r.Len() != 2 {
		t.Fatalf("expected 2 tabs, got %d", r.Len())
	}
	if got := r.Current().Path; got != "/left/sub" {
		t.Errorf("expected new tab at /left/sub, got %q", got)
	}
	// The outgoing tab snapshotted the live dir.
	if got := r.At(0).Path; got != "/left/sub" {
		t.Errorf("expected snapshot, got %q", got)
	}
}

func TestManager_ChangeSnapshotsAndActivates(t *testing.T) {
	m, a, _ := testManager(t)
	m.NewTab(0)
	a.dir = "/left/deep"

	m.Change(0, Prev)
	if got := m.Ring(0).At(1).Path; got != "/left/deep" {
		t.Errorf("expected outgoing tab to remember /left/deep, got %q", got)
	}
	if a.dir != "/left/sub" && a.dir != "/left" {
		t.Errorf("unexpected dir %q", a.dir)
	}
}

func TestManager_ChangeToUnvisitedTabKeepsDir(t *testing.T) {
	m, a, _ := testManager(t)
	r := m.Ring(0)
	r.Insert(&Tab{}, Next)

	m.Change(0, Next)
	if len(a.cds) != 0 {
		t.Errorf("expected no directory change for an unvisited tab, got %v", a.cds)
	}
}

func TestManager_CloseScenario(t *testing.T) {
	m, a, _ := testManager(t)
	r := m.Ring(0)
	r.tabs = []*Tab{{Name: "A", Path: "/a"}, {Name: "B", Path: "/b"}, {Name: "C", Path: "/c"}}
	r.current = 1

	if err := m.Close(0); err != nil {
		t.Fatal(err)
	}
	wantRing(t, r, []string{"A", "C"}, "A")
	if a.dir != "/a" {
		t.Errorf("expected panel moved to /a, got %q", a.dir)
	}

	if err := m.Close(0); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 tab, got %d", r.Len())
	}

	if err := m.Close(0); err != ErrLastTab {
		t.Fatalf("expected ErrLastTab, got %v", err)
	}
	if r.Len() != 1 {
		t.Error("refused close must leave the ring unchanged")
	}
}

func TestManager_MoveToOther(t *testing.T) {
	m, a, b := testManager(t)
	r := m.Ring(0)
	r.tabs = []*Tab{{Name: "A", Path: "/a"}, {Name: "B", Path: "/b"}}
	r.current = 1
	// The live panel sits in the current tab's directory; the move
	// snapshots it before transplanting.
	a.dir = "/b"

	if err := m.MoveToOther(0); err != nil {
		t.Fatal(err)
	}
	wantRing(t, r, []string{"A"}, "A")
	or := m.Ring(1)
	if or.Len() != 2 {
		t.Fatalf("expected 2 tabs in other ring, got %d", or.Len())
	}
	if got := or.Current().Name; got != "B" {
		t.Errorf("expected B current in other panel, got %q", got)
	}
	if b.dir != "/b" {
		t.Errorf("expected other panel moved to /b, got %q", b.dir)
	}
	if m.Focused != 1 {
		t.Errorf("expected focus to follow the tab, focused %d", m.Focused)
	}
}

func TestManager_MoveToOtherRefusesLast(t *testing.T) {
	m, _, _ := testManager(t)
	if err := m.MoveToOther(0); err != ErrLastTab {
		t.Fatalf("expected ErrLastTab, got %v", err)
	}
	if m.Ring(0).Len() != 1 {
		t.Error("refused move must leave the ring unchanged")
	}
}

func TestManager_CopyToOther(t *testing.T) {
	m, a, b := testManager(t)
	m.Rename(0, "work")
	a.dir = "/left/project"

	m.CopyToOther(0)
	or := m.Ring(1)
	if or.Len() != 2 {
		t.Fatalf("expected 2 tabs, got %d", or.Len())
	}
	cur := or.Current()
	if cur.Name != "work" || cur.Path != "/left/project" {
		t.Errorf("expected copied tab, got %+v", cur)
	}
	if b.dir != "/left/project" {
		t.Errorf("expected other panel to follow, got %q", b.dir)
	}
	// The source ring is untouched.
	if m.Ring(0).Len() != 1 {
		t.Errorf("expected source ring unchanged, got %d tabs", m.Ring(0).Len())
	}
}

func TestManager_SwapSingleTabsSwapsPanels(t *testing.T) {
	m, _, _ := testManager(t)
	if !m.Swap() {
		t.Error("expected panel-level swap for single-tab rings")
	}
}

func TestManager_SwapExchangesCurrentTabs(t *testing.T) {
	m, a, b := testManager(t)
	m.NewTab(0)
	m.Rename(0, "left-tab")
	m.Rename(1, "right-tab")
	a.dir = "/la"
	b.dir = "/rb"

	if m.Swap() {
		t.Fatal("expected in-ring swap")
	}
	if got := m.Ring(0).Current().Name; got != "right-tab" {
		t.Errorf("expected right-tab in panel 0, got %q", got)
	}
	if got := m.Ring(1).Current().Name; got != "left-tab" {
		t.Errorf("expected left-tab in panel 1, got %q", got)
	}
	if a.dir != "/rb" || b.dir != "/la" {
		t.Errorf("expected both panels to follow their new tab, got %q / %q", a.dir, b.dir)
	}
	if m.Focused != 1 {
		t.Errorf("expected focus switched, focused %d", m.Focused)
	}
}

func TestManager_GotoTab(t *testing.T) {
	m, a, _ := testManager(t)
	r := m.Ring(0)
	r.tabs = []*Tab{{Path: "/a"}, {Path: "/b"}, {Path: "/c"}}
	r.current = 0

	m.GotoTab(0, 2)
	if a.dir != "/c" {
		t.Errorf("expected /c, got %q", a.dir)
	}
	if m.TabIndex(0) != 3 {
		t.Errorf("expected 1-based index 3, got %d", m.TabIndex(0))
	}
}
