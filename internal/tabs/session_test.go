package tabs

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSession_RoundTrip(t *testing.T) {
	m, a, b := testManager(t)
	r := m.Ring(0)
	r.tabs = []*Tab{{Name: "work", Path: "/w"}, {Path: "/x"}}
	r.current = 1
	m.Focused = 0
	a.dir = "/x/live"
	b.dir = "/right"

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatal(err)
	}

	// The current tab's path is written from the live directory.
	if !strings.Contains(buf.String(), "/x/live") {
		t.Errorf("expected live dir in session:\n%s", buf.String())
	}

	m2, a2, _ := testManager(t)
	if err := m2.Restore(&buf); err != nil {
		t.Fatal(err)
	}
	r2 := m2.Ring(0)
	if r2.Len() != 2 {
		t.Fatalf("expected 2 tabs, got %d", r2.Len())
	}
	if got := r2.At(0); got.Name != "work" || got.Path != "/w" {
		t.Errorf("expected first tab restored, got %+v", got)
	}
	if r2.CurrentIndex() != 1 {
		t.Errorf("expected current index 1, got %d", r2.CurrentIndex())
	}
	if a2.dir != "/x/live" {
		t.Errorf("expected panel moved to restored tab dir, got %q", a2.dir)
	}
	if m2.Focused != 0 {
		t.Errorf("expected focus restored, got %d", m2.Focused)
	}
}

func TestSession_SkippedPanelSection(t *testing.T) {
	session := "[Current Panel]\n" +
		"0\n" +
		"1\n" +
		"(null)\n/a\n" +
		"(null)\n/b\n" +
		"\n" +
		"[Other Panel]\n" +
		"1\n" +
		"-1\n" +
		"\n"

	m, _, _ := testManager(t)
	before := m.Ring(1).Current()
	if err := m.Restore(strings.NewReader(session)); err != nil {
		t.Fatal(err)
	}
	if got := m.Ring(0).Len(); got != 2 {
		t.Errorf("expected current panel replaced with 2 tabs, got %d", got)
	}
	if got := m.Ring(0).Current().Path; got != "/b" {
		t.Errorf("expected /b current, got %q", got)
	}
	if m.Ring(1).Len() != 1 || m.Ring(1).Current() != before {
		t.Error("expected skipped panel's ring untouched")
	}
}

func TestSession_CorruptSectionIsIndependent(t *testing.T) {
	session := "[Current Panel]\n" +
		"0\n" +
		"5\n" + // tab index out of range
		"(null)\n/a\n" +
		"\n" +
		"[Other Panel]\n" +
		"1\n" +
		"0\n" +
		"named\n/other\n" +
		"\n"

	m, _, _ := testManager(t)
	err := m.Restore(strings.NewReader(session))
	if !errors.Is(err, ErrCorruptSession) {
		t.Fatalf("expected ErrCorruptSession, got %v", err)
	}
	// The valid other-panel section still applied.
	if got := m.Ring(1).Current(); got == nil || got.Name != "named" || got.Path != "/other" {
		t.Errorf("expected other panel restored, got %+v", got)
	}
	// The corrupt section left the live ring alone.
	if m.Ring(0).Len() != 1 {
		t.Errorf("expected current panel untouched, got %d tabs", m.Ring(0).Len())
	}
}

func TestSession_StructuralCorruptionKeepsSectionsAligned(t *testing.T) {
	// A non-numeric tab index aborts the current section mid-body; the
	// other section must still be found and applied.
	session := "[Current Panel]\n" +
		"0\n" +
		"x\n" +
		"(null)\n/a\n" +
		"\n" +
		"[Other Panel]\n" +
		"1\n" +
		"0\n" +
		"named\n/other\n" +
		"\n"

	m, _, b := testManager(t)
	err := m.Restore(strings.NewReader(session))
	if !errors.Is(err, ErrCorruptSession) {
		t.Fatalf("expected ErrCorruptSession, got %v", err)
	}
	if got := m.Ring(1).Current(); got == nil || got.Name != "named" || got.Path != "/other" {
		t.Errorf("expected other panel restored, got %+v", got)
	}
	if b.dir != "/other" {
		t.Errorf("expected other panel moved to /other, got %q", b.dir)
	}
	if m.Ring(0).Len() != 1 {
		t.Errorf("expected current panel untouched, got %d tabs", m.Ring(0).Len())
	}
}

func TestSession_StructuralErrors(t *testing.T) {
	cases := []string{
		"",
		"[Wrong Header]\n0\n0\n\n",
		"[Current Panel]\nx\n0\n\n",
		"[Current Panel]\n0\n0\n(null)\n",
		"[Current Panel]\n0\n0\n\n",
	}
	for _, s := range cases {
		m, _, _ := testManager(t)
		if err := m.Restore(strings.NewReader(s)); !errors.Is(err, ErrCorruptSession) {
			t.Errorf("input %q: expected ErrCorruptSession, got %v", s, err)
		}
	}
}

func TestSession_Files(t *testing.T) {
	dir := t.TempDir()
	m, _, _ := testManager(t)
	m.Rename(0, "saved")
	if err := m.SaveFile(dir, "daily"); err != nil {
		t.Fatal(err)
	}

	names, err := ListSessions(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "daily" {
		t.Errorf("expected [daily], got %v", names)
	}

	m2, _, _ := testManager(t)
	if err := m2.RestoreFile(dir, "daily"); err != nil {
		t.Fatal(err)
	}
	if got := m2.Ring(0).Current().Name; got != "saved" {
		t.Errorf("expected restored tab name, got %q", got)
	}

	if err := m2.RestoreFile(dir, "missing"); err == nil {
		t.Error("expected error for a missing session")
	}
}

func TestListSessions_MissingDir(t *testing.T) {
	names, err := ListSessions("/nonexistent/sessions")
	if err != nil || names != nil {
		t.Errorf("expected empty result, got %v / %v", names, err)
	}
}
