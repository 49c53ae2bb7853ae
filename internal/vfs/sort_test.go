package vfs

import (
	"os"
	"testing"
	"time"
)

func names(l List) []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Name
	}
	return out
}

func equalNames(t *testing.T, got List, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), names(got))
	}
	for i, w := range want {
		if got[i].Name != w {
			t.Errorf("position %d: expected %q, got %q (full order %v)", i, w, got[i].Name, names(got))
		}
	}
}

func TestSort_DotDotStaysFirst(t *testing.T) {
	l := List{
		{Name: "zebra"},
		{Name: DotDot, Mode: os.ModeDir},
		{Name: "apple"},
	}
	l.Sort(CompareName, SortOptions{Reverse: true})
	equalNames(t, l, []string{"..", "zebra", "apple"})
}

func TestSort_DirsFirst(t *testing.T) {
	l := List{
		{Name: "readme.txt"},
		{Name: "src", Mode: os.ModeDir},
		{Name: "Makefile"},
		{Name: "bin", Mode: os.ModeDir},
	}
	l.Sort(CompareName, SortOptions{DirsFirst: true, CaseSensitive: false})
	equalNames(t, l, []string{"bin", "src", "Makefile", "readme.txt"})
}

func TestSort_CaseSensitivity(t *testing.T) {
	l := List{{Name: "b"}, {Name: "A"}, {Name: "a"}, {Name: "B"}}
	l.Sort(CompareName, SortOptions{CaseSensitive: true})
	equalNames(t, l, []string{"A", "B", "a", "b"})

	l = List{{Name: "b"}, {Name: "A"}, {Name: "a"}, {Name: "B"}}
	l.Sort(CompareName, SortOptions{CaseSensitive: false})
	equalNames(t, l, []string{"A", "a", "B", "b"})
}

func TestSort_Version(t *testing.T) {
	l := List{
		{Name: "file10.txt"},
		{Name: "file2.txt"},
		{Name: "file1.txt"},
	}
	l.Sort(CompareVersion, SortOptions{})
	equalNames(t, l, []string{"file1.txt", "file2.txt", "file10.txt"})
}

func TestSort_VersionLeadingZeros(t *testing.T) {
	l := List{{Name: "v007"}, {Name: "v08"}, {Name: "v9"}}
	l.Sort(CompareVersion, SortOptions{})
	equalNames(t, l, []string{"v007", "v08", "v9"})
}

func TestSort_Extension(t *testing.T) {
	l := List{
		{Name: "b.go"},
		{Name: "a.md"},
		{Name: "c.go"},
		{Name: "noext"},
	}
	l.Sort(CompareExtension, SortOptions{})
	equalNames(t, l, []string{"noext", "b.go", "c.go", "a.md"})
}

func TestSort_SizeTiesBreakByName(t *testing.T) {
	l := List{
		{Name: "big", Size: 100},
		{Name: "b", Size: 10},
		{Name: "a", Size: 10},
	}
	l.Sort(CompareSize, SortOptions{})
	equalNames(t, l, []string{"a", "b", "big"})
}

func TestSort_MTime(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l := List{
		{Name: "new", MTime: base.Add(time.Hour)},
		{Name: "old", MTime: base},
	}
	l.Sort(CompareMTime, SortOptions{})
	equalNames(t, l, []string{"old", "new"})

	l.Sort(CompareMTime, SortOptions{Reverse: true})
	equalNames(t, l, []string{"new", "old"})
}

func TestComparatorFor(t *testing.T) {
	cmp, ok := ComparatorFor("unsorted")
	if !ok || cmp != nil {
		t.Errorf("expected unsorted to resolve with nil comparator, got ok=%v cmp=%v", ok, cmp)
	}
	if _, ok := ComparatorFor("name"); !ok {
		t.Error("expected name to be sortable")
	}
	if _, ok := ComparatorFor("perm"); ok {
		t.Error("expected perm to be unsortable")
	}
}
