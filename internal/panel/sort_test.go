package panel

import "testing"

func TestSort_ReselectingFieldReverses(t *testing.T) {
	p := newTestPanel(t, entries("alpha", "beta", "gamma"), Options{})
	if err := p.SetSortField("name"); err != nil {
		t.Fatal(err)
	}
	if !p.Sort.Reverse {
		t.Fatal("expected reselecting the active field to reverse")
	}
	if got := p.Entries[1].Name; got != "gamma" {
		t.Errorf("expected gamma first after reverse, got %q", got)
	}

	if err := p.SetSortField("size"); err != nil {
		t.Fatal(err)
	}
	if p.Sort.Reverse {
		t.Error("expected a new field to reset direction")
	}
}

func TestSort_KeepsCursorOnFile(t *testing.T) {
	p := newTestPanel(t, entries("aa", "bbbb", "ccc"), Options{})
	p.Select(p.Entries.IndexOf("ccc"))
	if err := p.SetSortField("size"); err != nil {
		t.Fatal(err)
	}
	if got := p.Current().Name; got != "ccc" {
		t.Errorf("expected cursor to follow ccc, got %q", got)
	}
}

func TestSort_UnsortedReloads(t *testing.T) {
	p := newTestPanel(t, entries("b", "a", "c"), Options{})
	p.Select(p.Entries.IndexOf("a"))
	if err := p.SetSortField("unsorted"); err != nil {
		t.Fatal(err)
	}
	// Load order from the provider: dotdot, b, a, c.
	if got := p.Entries[1].Name; got != "b" {
		t.Errorf("expected load order restored, got %q first", got)
	}
	if got := p.Current().Name; got != "a" {
		t.Errorf("expected cursor still on a, got %q", got)
	}
}

func TestSort_CycleFieldsLimitedToFormat(t *testing.T) {
	// The test format is "half name size": cycling only visits the sort
	// keys whose columns the format shows.
	p := newTestPanel(t, entries("a", "b"), Options{})
	p.Sort.Field = "name"
	p.NextSortField()
	if p.Sort.Field != "size" {
		t.Errorf("expected size after name, got %q", p.Sort.Field)
	}
	p.NextSortField()
	if p.Sort.Field != "name" {
		t.Errorf("expected wrap back to name, got %q", p.Sort.Field)
	}
	p.PrevSortField()
	if p.Sort.Field != "size" {
		t.Errorf("expected size again, got %q", p.Sort.Field)
	}
}

func TestSort_CycleFieldsWiderFormat(t *testing.T) {
	p := newTestPanel(t, entries("a", "b"), Options{})
	if err := p.SetFormat("half name | size | mtime | inode"); err != nil {
		t.Fatal(err)
	}
	p.Sort.Field = "name"
	p.PrevSortField()
	if p.Sort.Field != "inode" {
		t.Errorf("expected wrap to inode, got %q", p.Sort.Field)
	}
	p.NextSortField()
	if p.Sort.Field != "name" {
		t.Errorf("expected name again, got %q", p.Sort.Field)
	}
}

func TestSort_ToggleReverse(t *testing.T) {
	p := newTestPanel(t, entries("a", "b"), Options{})
	p.ToggleReverse()
	if !p.Sort.Reverse {
		t.Error("expected reverse on")
	}
	if got := p.Entries[1].Name; got != "b" {
		t.Errorf("expected b first, got %q", got)
	}
}
