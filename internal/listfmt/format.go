package listfmt

import (
	"fmt"
	"strings"
)

// Frame selects whether the listing occupies the full screen width or half.
type Frame int

const (
	FrameHalf Frame = iota
	FrameFull
)

// Default format strings. Callers fall back to DefaultFormat whenever a
// user-supplied format fails to compile.
const (
	DefaultFormat = "half type name | size | mtime"
	LongFormat    = "full perm space nlink space owner space group space size space mtime space name"
	BriefFormat   = "half 2 type name"
)

// MaxListCols bounds multi-column (brief) listings.
const MaxListCols = 9

// ColumnSpec is one compiled format item. RequestedWidth is what the format
// asked for; Width is filled in by Solve.
type ColumnSpec struct {
	Field
	RequestedWidth int
	Width          int
}

// Format is a compiled format string.
type Format struct {
	Frame    Frame
	ListCols int
	Columns  []*ColumnSpec

	// RequestedTotal is the sum of requested widths before solving.
	RequestedTotal int
}

// FormatError reports the first unrecognized token of a format string. The
// token is truncated to 8 characters when the error is built.
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unknown list format item: %s", e.Token)
}

func newFormatError(token string) *FormatError {
	if len(token) > 8 {
		token = token[:8]
	}
	return &FormatError{Token: token}
}

// Compile parses a format string into column specs. On error the returned
// format is nil and the caller is expected to recompile with DefaultFormat.
func Compile(format string) (*Format, error) {
	tokens := strings.FieldsFunc(format, func(r rune) bool {
		return r == ' ' || r == ','
	})

	out := &Format{Frame: FrameHalf, ListCols: 1}

	i := 0
	if i < len(tokens) {
		switch tokens[i] {
		case "full":
			out.Frame = FrameFull
			i++
		case "half":
			out.Frame = FrameHalf
			i++
		}
	}
	if i < len(tokens) && isAllDigits(tokens[i]) {
		n := 0
		for _, c := range tokens[i] {
			n = n*10 + int(c-'0')
		}
		if n < 1 {
			n = 1
		}
		if n > MaxListCols {
			n = MaxListCols
		}
		out.ListCols = n
		i++
	}

	for ; i < len(tokens); i++ {
		tok := tokens[i]

		justify := -1
		switch tok[0] {
		case '<':
			justify = int(JustifyLeft)
			tok = tok[1:]
		case '=':
			justify = int(JustifyCenter)
			tok = tok[1:]
		case '>':
			justify = int(JustifyRight)
			tok = tok[1:]
		}

		id := tok
		width := 0
		keepExpand := false
		if c := strings.IndexByte(tok, ':'); c >= 0 {
			id = tok[:c]
			spec := tok[c+1:]
			if strings.HasSuffix(spec, "+") {
				keepExpand = true
				spec = spec[:len(spec)-1]
			}
			if !isAllDigits(spec) || spec == "" {
				return nil, newFormatError(tokens[i])
			}
			for _, ch := range spec {
				width = width*10 + int(ch-'0')
			}
		}

		f, ok := FieldByPrefix(id)
		if !ok {
			return nil, newFormatError(tokens[i])
		}

		col := &ColumnSpec{Field: f, RequestedWidth: f.MinWidth}
		if justify >= 0 {
			// An explicit override keeps the field's fit behavior.
			col.Justify = Justify(justify)
		}
		if width > 0 {
			// An explicit width pins the column unless '+' re-enables
			// expansion.
			col.RequestedWidth = width
			col.Expands = keepExpand
		}
		out.Columns = append(out.Columns, col)
		out.RequestedTotal += col.RequestedWidth
	}

	return out, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
