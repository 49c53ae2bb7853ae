package listfmt

import (
	"errors"
	"testing"
)

func compile(t *testing.T, format string) *Format {
	t.Helper()
	f, err := Compile(format)
	if err != nil {
		t.Fatalf("compile %q: %v", format, err)
	}
	return f
}

func TestCompile_Default(t *testing.T) {
	f := compile(t, DefaultFormat)
	if f.Frame != FrameHalf {
		t.Errorf("expected half frame, got %v", f.Frame)
	}
	if f.ListCols != 1 {
		t.Errorf("expected 1 list column, got %d", f.ListCols)
	}
	wantKinds := []FieldKind{KindType, KindName, KindVLine, KindSize, KindVLine, KindMTime}
	if len(f.Columns) != len(wantKinds) {
		t.Fatalf("expected %d columns, got %d", len(wantKinds), len(f.Columns))
	}
	for i, k := range wantKinds {
		if f.Columns[i].Kind != k {
			t.Errorf("column %d: expected kind %v, got %v", i, k, f.Columns[i].Kind)
		}
	}
}

func TestCompile_PrefixAbbreviation(t *testing.T) {
	f := compile(t, "half n si mt")
	want := []FieldKind{KindName, KindSize, KindMTime}
	for i, k := range want {
		if f.Columns[i].Kind != k {
			t.Errorf("column %d: expected kind %v, got %v", i, k, f.Columns[i].Kind)
		}
	}
}

func TestCompile_BriefColumnCount(t *testing.T) {
	f := compile(t, BriefFormat)
	if f.ListCols != 2 {
		t.Errorf("expected 2 list columns, got %d", f.ListCols)
	}

	f = compile(t, "half 42 name")
	if f.ListCols != MaxListCols {
		t.Errorf("expected column count clamped to %d, got %d", MaxListCols, f.ListCols)
	}
}

func TestCompile_ExplicitWidthCancelsExpand(t *testing.T) {
	f := compile(t, "half name:20 size")
	if f.Columns[0].RequestedWidth != 20 {
		t.Errorf("expected requested width 20, got %d", f.Columns[0].RequestedWidth)
	}
	if f.Columns[0].Expands {
		t.Error("explicit width must cancel expansion")
	}

	f = compile(t, "half name:20+ size")
	if !f.Columns[0].Expands {
		t.Error("trailing + must keep expansion")
	}
}

func TestCompile_JustifyOverride(t *testing.T) {
	f := compile(t, "half >name =size <mtime")
	if f.Columns[0].Justify != JustifyRight {
		t.Errorf("expected right justify, got %v", f.Columns[0].Justify)
	}
	if !f.Columns[0].Fit {
		t.Error("override must keep the field's fit behavior")
	}
	if f.Columns[1].Justify != JustifyCenter {
		t.Errorf("expected center justify, got %v", f.Columns[1].Justify)
	}
	if f.Columns[2].Justify != JustifyLeft {
		t.Errorf("expected left justify, got %v", f.Columns[2].Justify)
	}
}

func TestCompile_CommaSeparators(t *testing.T) {
	f := compile(t, "half name,size,mtime")
	if len(f.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(f.Columns))
	}
}

func TestCompile_UnknownToken(t *testing.T) {
	_, err := Compile("half name bogusfieldname size")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Token != "bogusfie" {
		t.Errorf("expected token truncated to 8 chars, got %q", fe.Token)
	}
}

func TestCompile_BadWidth(t *testing.T) {
	if _, err := Compile("half name:abc"); err == nil {
		t.Error("expected error for non-numeric width")
	}
	if _, err := Compile("half name:"); err == nil {
		t.Error("expected error for empty width")
	}
}

func TestCompile_LongFormatIsFull(t *testing.T) {
	f := compile(t, LongFormat)
	if f.Frame != FrameFull {
		t.Errorf("expected full frame, got %v", f.Frame)
	}
}

func TestSortableFields(t *testing.T) {
	got := SortableFields()
	if len(got) == 0 || got[0] != "unsorted" {
		t.Fatalf("expected unsorted first, got %v", got)
	}
	for _, id := range []string{"name", "size", "mtime", "inode"} {
		found := false
		for _, g := range got {
			if g == id {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q among sortable fields %v", id, got)
		}
	}
}
