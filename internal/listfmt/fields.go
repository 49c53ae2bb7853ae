package listfmt

// Justify selects how a column pads its cell text.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyRight
	JustifyCenter
)

// FieldKind is the closed set of things a column can display. The row
// renderer switches on this, so adding a field means adding a kind.
type FieldKind int

const (
	KindName FieldKind = iota
	KindVersion
	KindExtension
	KindSize
	KindBlockSize
	KindType
	KindMTime
	KindATime
	KindCTime
	KindPerm
	KindMode
	KindNlink
	KindInode
	KindNUID
	KindNGID
	KindOwner
	KindGroup
	KindMark
	KindVLine
	KindSpace
	KindDot
)

// Field describes one recognizable format item.
type Field struct {
	ID       string
	Title    string
	Kind     FieldKind
	MinWidth int
	Expands  bool
	Justify  Justify
	Fit      bool
	Sortable bool
}

// fields is matched by prefix in order, so more specific ids must come
// before shorter ones that share a prefix.
var fields = []Field{
	{ID: "unsorted", Title: "Name", Kind: KindName, MinWidth: 12, Expands: true, Justify: JustifyLeft, Fit: true, Sortable: true},
	{ID: "name", Title: "Name", Kind: KindName, MinWidth: 12, Expands: true, Justify: JustifyLeft, Fit: true, Sortable: true},
	{ID: "version", Title: "Version", Kind: KindVersion, MinWidth: 12, Expands: true, Justify: JustifyLeft, Fit: true, Sortable: true},
	{ID: "extension", Title: "Extension", Kind: KindExtension, MinWidth: 12, Expands: true, Justify: JustifyLeft, Fit: true, Sortable: true},
	{ID: "size", Title: "Size", Kind: KindSize, MinWidth: 7, Justify: JustifyRight, Sortable: true},
	{ID: "bsize", Title: "Block Size", Kind: KindBlockSize, MinWidth: 7, Justify: JustifyRight, Sortable: true},
	{ID: "type", Title: "", Kind: KindType, MinWidth: 1, Justify: JustifyLeft},
	{ID: "mtime", Title: "Modify time", Kind: KindMTime, MinWidth: 12, Justify: JustifyRight, Sortable: true},
	{ID: "atime", Title: "Access time", Kind: KindATime, MinWidth: 12, Justify: JustifyRight, Sortable: true},
	{ID: "ctime", Title: "Change time", Kind: KindCTime, MinWidth: 12, Justify: JustifyRight, Sortable: true},
	{ID: "perm", Title: "Permission", Kind: KindPerm, MinWidth: 10, Justify: JustifyLeft},
	{ID: "mode", Title: "Perm", Kind: KindMode, MinWidth: 6, Justify: JustifyRight},
	{ID: "nlink", Title: "Nl", Kind: KindNlink, MinWidth: 2, Justify: JustifyRight},
	{ID: "inode", Title: "Inode", Kind: KindInode, MinWidth: 5, Justify: JustifyRight, Sortable: true},
	{ID: "nuid", Title: "UID", Kind: KindNUID, MinWidth: 5, Justify: JustifyRight},
	{ID: "ngid", Title: "GID", Kind: KindNGID, MinWidth: 5, Justify: JustifyRight},
	{ID: "owner", Title: "Owner", Kind: KindOwner, MinWidth: 8, Justify: JustifyLeft, Fit: true},
	{ID: "group", Title: "Group", Kind: KindGroup, MinWidth: 8, Justify: JustifyLeft, Fit: true},
	{ID: "mark", Title: "*", Kind: KindMark, MinWidth: 1, Justify: JustifyRight},
	{ID: "|", Title: "|", Kind: KindVLine, MinWidth: 1, Justify: JustifyRight},
	{ID: "space", Title: " ", Kind: KindSpace, MinWidth: 1, Justify: JustifyRight},
	{ID: "dot", Title: ".", Kind: KindDot, MinWidth: 1, Justify: JustifyRight},
}

// FieldByPrefix resolves a format token to a field by prefix match, the way
// the format grammar abbreviates ids ("n" means name, "si" means size).
func FieldByPrefix(token string) (Field, bool) {
	if token == "" {
		return Field{}, false
	}
	for _, f := range fields {
		if len(token) <= len(f.ID) && f.ID[:len(token)] == token {
			return f, true
		}
	}
	return Field{}, false
}

// SortableFields returns the ids that may be used as sort keys, in
// declaration order, with "unsorted" first.
func SortableFields() []string {
	out := make([]string, 0, 10)
	for _, f := range fields {
		if f.Sortable {
			out = append(out, f.ID)
		}
	}
	return out
}
