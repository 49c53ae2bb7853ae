package panel

import (
	"os"
	"testing"

	"github.com/wilbur182/panes/internal/match"
	"github.com/wilbur182/panes/internal/vfs"
)

// checkSummary recomputes the totals from scratch and compares them with
// the incrementally maintained ones.
func checkSummary(t *testing.T, p *Panel) {
	t.Helper()
	count, dirs := 0, 0
	var total int64
	for _, e := range p.Entries {
		if !e.Marked {
			continue
		}
		count++
		if e.IsDir() {
			dirs++
			if e.DirSizeComputed {
				total += e.Size
			}
		} else {
			total += e.Size
		}
	}
	if p.MarkedCount != count || p.MarkedDirs != dirs || p.MarkedTotal != total {
		t.Errorf("summary drift: expected (%d,%d,%d), got (%d,%d,%d)",
			count, dirs, total, p.MarkedCount, p.MarkedDirs, p.MarkedTotal)
	}
}

func TestMark_Toggle(t *testing.T) {
	p := newTestPanel(t, entries("alpha", "beta"), Options{})
	p.Select(1)
	p.ToggleMark()
	if !p.Entries[1].Marked {
		t.Fatal("expected entry marked")
	}
	checkSummary(t, p)
	p.Select(1)
	p.ToggleMark()
	if p.Entries[1].Marked {
		t.Fatal("expected entry unmarked")
	}
	checkSummary(t, p)
}

func TestMark_DotDotNeverMarks(t *testing.T) {
	p := newTestPanel(t, entries("a"), Options{})
	p.Select(0)
	p.ToggleMark()
	if p.Entries[0].Marked {
		t.Error("parent entry must never mark")
	}
	checkSummary(t, p)
}

func TestMark_MovesDown(t *testing.T) {
	p := newTestPanel(t, entries("a", "b"), Options{MarkMovesDown: true})
	p.Select(1)
	p.ToggleMark()
	if p.Selected != 2 {
		t.Errorf("expected cursor to advance, selected %d", p.Selected)
	}
}

func TestMark_DirWithoutComputedSize(t *testing.T) {
	list := entries("file")
	list = append(list, &vfs.Entry{Name: "sub", Mode: os.ModeDir, Size: 4096})
	p := newTestPanel(t, list, Options{})

	p.Select(p.Entries.IndexOf("sub"))
	p.ToggleMark()
	if p.MarkedTotal != 0 {
		t.Errorf("uncomputed directory size must not count, total %d", p.MarkedTotal)
	}
	if p.MarkedDirs != 1 {
		t.Errorf("expected 1 marked dir, got %d", p.MarkedDirs)
	}
	checkSummary(t, p)
}

func TestMark_Recalculate(t *testing.T) {
	p := newTestPanel(t, entries("aa", "bbb", "cccc"), Options{})
	for i := 1; i < len(p.Entries); i++ {
		p.Select(i)
		p.ToggleMark()
	}
	// Simulate an external edit that corrupted the totals.
	p.MarkedTotal = 999
	p.RecalculateSummary()
	checkSummary(t, p)
	if p.MarkedCount != 3 {
		t.Errorf("expected 3 marked, got %d", p.MarkedCount)
	}
}

func TestMark_Pattern(t *testing.T) {
	p := newTestPanel(t, entries("main.go", "main_test.go", "README.md"), Options{})
	m, err := match.Compile("*.go", match.Options{Kind: match.Glob, WholeLine: true})
	if err != nil {
		t.Fatal(err)
	}
	if n := p.MarkPattern(m, true, true); n != 2 {
		t.Errorf("expected 2 marked, got %d", n)
	}
	checkSummary(t, p)

	if n := p.MarkPattern(m, false, true); n != 2 {
		t.Errorf("expected 2 unmarked, got %d", n)
	}
	if p.MarkedCount != 0 {
		t.Errorf("expected nothing marked, got %d", p.MarkedCount)
	}
}

func TestMark_Invert(t *testing.T) {
	p := newTestPanel(t, entries("a", "b", "c"), Options{})
	p.Select(1)
	p.ToggleMark()
	p.InvertMarks(false)
	if p.Entries[1].Marked {
		t.Error("expected first mark cleared")
	}
	if !p.Entries[2].Marked || !p.Entries[3].Marked {
		t.Error("expected others marked")
	}
	checkSummary(t, p)
}

func TestMark_SweepForward(t *testing.T) {
	p := newTestPanel(t, numbered(5), Options{})
	p.Select(1)
	p.MarkForward()
	for i := 1; i <= 5; i++ {
		if !p.Entries[i].Marked {
			t.Errorf("expected entry %d marked", i)
		}
	}
	checkSummary(t, p)
}

func TestMark_UnmarkAll(t *testing.T) {
	p := newTestPanel(t, entries("a", "b"), Options{})
	p.InvertMarks(false)
	p.UnmarkAll()
	if p.MarkedCount != 0 || p.MarkedTotal != 0 {
		t.Errorf("expected clean summary, got count=%d total=%d", p.MarkedCount, p.MarkedTotal)
	}
}
