package panel

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/wilbur182/panes/internal/listfmt"
	"github.com/wilbur182/panes/internal/vfs"
)

// Row is one rendered listing line, ready for the app to style.
type Row struct {
	Index    int
	Text     string
	Selected bool
	Marked   bool
	IsDir    bool
	Stale    bool
}

// Rows renders the visible window of entries through the compiled format.
// The max content shift is refreshed here, against the widths actually
// painted, which is what keeps horizontal scrolling honest after a resize.
func (p *Panel) Rows() []Row {
	end := p.Top + p.ItemsPerPage()
	if end > len(p.Entries) {
		end = len(p.Entries)
	}
	if p.Top < 0 || p.Top > end {
		return nil
	}

	nameWidth := p.nameColumnWidth()
	maxOver := 0

	out := make([]Row, 0, end-p.Top)
	for i := p.Top; i < end; i++ {
		e := p.Entries[i]
		if over := listfmt.Overhang(e.Name, nameWidth); over > maxOver {
			maxOver = over
		}
		out = append(out, Row{
			Index:    i,
			Text:     p.renderEntry(e),
			Selected: i == p.Selected,
			Marked:   e.Marked,
			IsDir:    e.IsDir(),
			Stale:    e.StaleLink,
		})
	}

	p.maxShift = maxOver
	p.maxShiftValid = true
	return out
}

// HeaderRow renders the column titles line.
func (p *Panel) HeaderRow() string {
	if p.Format == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range p.Format.Columns {
		b.WriteString(listfmt.Fit(c.Title, c.Width, listfmt.JustifyCenter))
	}
	return b.String()
}

func (p *Panel) renderEntry(e *vfs.Entry) string {
	var b strings.Builder
	for _, c := range p.Format.Columns {
		b.WriteString(p.renderCell(e, c))
	}
	return b.String()
}

func (p *Panel) renderCell(e *vfs.Entry, c *listfmt.ColumnSpec) string {
	switch c.Kind {
	case listfmt.KindName:
		shift := 0
		if p.Shift > 0 {
			shift = p.Shift
		}
		return listfmt.ShiftTruncate(e.Name, c.Width, shift)
	case listfmt.KindVersion, listfmt.KindExtension:
		return listfmt.Fit(cellValue(e, c.Kind), c.Width, c.Justify)
	case listfmt.KindVLine:
		return "│"
	case listfmt.KindSpace:
		return " "
	case listfmt.KindDot:
		return "."
	case listfmt.KindMark:
		if e.Marked {
			return "*"
		}
		return " "
	case listfmt.KindType:
		return typeChar(e)
	default:
		return listfmt.Fit(cellValue(e, c.Kind), c.Width, c.Justify)
	}
}

func cellValue(e *vfs.Entry, kind listfmt.FieldKind) string {
	switch kind {
	case listfmt.KindVersion:
		return e.Name
	case listfmt.KindExtension:
		if i := strings.LastIndexByte(e.Name, '.'); i > 0 {
			return e.Name[i+1:]
		}
		return ""
	case listfmt.KindSize:
		return sizeText(e)
	case listfmt.KindBlockSize:
		return strconv.FormatInt(e.Blocks, 10)
	case listfmt.KindMTime:
		return timeText(e.MTime)
	case listfmt.KindATime:
		return timeText(e.ATime)
	case listfmt.KindCTime:
		return timeText(e.CTime)
	case listfmt.KindPerm:
		return permText(e.Mode)
	case listfmt.KindMode:
		return strconv.FormatUint(uint64(octalMode(e.Mode)), 8)
	case listfmt.KindNlink:
		return strconv.FormatUint(e.Nlink, 10)
	case listfmt.KindInode:
		return strconv.FormatUint(e.Inode, 10)
	case listfmt.KindNUID:
		return strconv.FormatUint(uint64(e.UID), 10)
	case listfmt.KindNGID:
		return strconv.FormatUint(uint64(e.GID), 10)
	case listfmt.KindOwner:
		return e.Owner
	case listfmt.KindGroup:
		return e.Group
	default:
		return e.Name
	}
}

func sizeText(e *vfs.Entry) string {
	if e.IsDotDot() {
		return "UP--DIR"
	}
	if e.IsDir() && !e.DirSizeComputed {
		return "DIR"
	}
	return strconv.FormatInt(e.Size, 10)
}

// timeText renders like ls: clock for the last half year, year otherwise.
func timeText(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if age := time.Since(t); age >= 0 && age < 182*24*time.Hour {
		return t.Format("Jan _2 15:04")
	}
	return t.Format("Jan _2  2006")
}

func typeChar(e *vfs.Entry) string {
	switch {
	case e.IsLink() && e.StaleLink:
		return "!"
	case e.IsLink():
		return "@"
	case e.IsDotDot():
		return "/"
	case e.IsDir():
		return "/"
	case e.Mode&fs.ModeNamedPipe != 0:
		return "|"
	case e.Mode&fs.ModeSocket != 0:
		return "="
	case e.Mode&fs.ModeDevice != 0:
		return "-"
	case e.IsExecutable():
		return "*"
	default:
		return " "
	}
}

func permText(m fs.FileMode) string {
	var b [10]byte
	switch {
	case m.IsDir():
		b[0] = 'd'
	case m&fs.ModeSymlink != 0:
		b[0] = 'l'
	case m&fs.ModeNamedPipe != 0:
		b[0] = 'p'
	case m&fs.ModeSocket != 0:
		b[0] = 's'
	case m&fs.ModeCharDevice != 0:
		b[0] = 'c'
	case m&fs.ModeDevice != 0:
		b[0] = 'b'
	default:
		b[0] = '-'
	}
	const rwx = "rwxrwxrwx"
	perm := m.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			b[i+1] = rwx[i]
		} else {
			b[i+1] = '-'
		}
	}
	if m&fs.ModeSetuid != 0 {
		b[3] = 's'
	}
	if m&fs.ModeSetgid != 0 {
		b[6] = 's'
	}
	if m&fs.ModeSticky != 0 {
		b[9] = 't'
	}
	return string(b[:])
}

func octalMode(m fs.FileMode) uint32 {
	mode := uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		mode |= 0o4000
	}
	if m&fs.ModeSetgid != 0 {
		mode |= 0o2000
	}
	if m&fs.ModeSticky != 0 {
		mode |= 0o1000
	}
	return mode
}

// MiniStatus is the one-line summary under the listing: the marked totals
// when anything is marked, otherwise the selected entry.
func (p *Panel) MiniStatus() string {
	if p.Searching {
		return "/" + p.SearchBuffer
	}
	if p.MarkedCount > 0 {
		return fmt.Sprintf("%s in %d files", humanize.IBytes(uint64(p.MarkedTotal)), p.MarkedCount)
	}
	e := p.Current()
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s  %s  %s", e.Name, sizeText(e), timeText(e.MTime))
}

// FreeSpaceStatus renders the cached filesystem usage for the frame title.
func (p *Panel) FreeSpaceStatus() string {
	free, total, ok := p.FreeSpace()
	if !ok || total == 0 {
		return ""
	}
	return fmt.Sprintf("%s/%s free", humanize.IBytes(free), humanize.IBytes(total))
}
