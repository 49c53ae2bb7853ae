package keymap

import "fmt"

// Command IDs. The app registers a handler for each; bindings and user
// overrides refer to these.
const (
	CmdQuit        = "quit"
	CmdSwitchPanel = "panel.switch"
	CmdSwapPanels  = "panel.swap"
	CmdCopyPath    = "panel.copy-path"

	CmdUp           = "nav.up"
	CmdDown         = "nav.down"
	CmdPageUp       = "nav.page-up"
	CmdPageDown     = "nav.page-down"
	CmdHome         = "nav.home"
	CmdEnd          = "nav.end"
	CmdViewTop      = "nav.view-top"
	CmdViewMiddle   = "nav.view-middle"
	CmdViewBottom   = "nav.view-bottom"
	CmdEnter        = "nav.enter"
	CmdUpDir        = "nav.updir"
	CmdScrollLeft   = "nav.scroll-left"
	CmdScrollRight  = "nav.scroll-right"
	CmdReload       = "nav.reload"
	CmdHistoryBack  = "nav.history-back"
	CmdToggleHidden = "nav.toggle-hidden"

	CmdMark         = "mark.toggle"
	CmdMarkDown     = "mark.sweep-down"
	CmdMarkUp       = "mark.sweep-up"
	CmdSelectGlob   = "mark.select"
	CmdUnselectGlob = "mark.unselect"
	CmdInvertMarks  = "mark.invert"
	CmdUnmarkAll    = "mark.clear"

	CmdSearch = "search.start"

	CmdListingMode = "panel.listing-mode"

	CmdSortName     = "sort.name"
	CmdSortExt      = "sort.extension"
	CmdSortSize     = "sort.size"
	CmdSortMTime    = "sort.mtime"
	CmdSortUnsorted = "sort.unsorted"
	CmdSortNext     = "sort.next"
	CmdSortPrev     = "sort.prev"
	CmdSortReverse  = "sort.reverse"

	// CmdTabGotoPrefix prefixes the go-to-tab-by-index commands; the
	// 1-based ring position follows the dot.
	CmdTabGotoPrefix = "tab.goto."

	CmdTabNew      = "tab.new"
	CmdTabClose    = "tab.close"
	CmdTabNext     = "tab.next"
	CmdTabPrev     = "tab.prev"
	CmdTabMove     = "tab.move-other"
	CmdTabCopy     = "tab.copy-other"
	CmdTabRename   = "tab.rename"
	CmdTabSwap     = "tab.swap"
	CmdSessionSave = "tab.session-save"
	CmdSessionLoad = "tab.session-load"
)

// Contexts. The panel context is active whenever a listing has focus.
const (
	ContextGlobal = "global"
	ContextPanel  = "panel"
)

// RegisterDefaults installs the default key bindings.
func RegisterDefaults(r *Registry) {
	global := []Binding{
		{Key: "q", Command: CmdQuit},
		{Key: "ctrl+q", Command: CmdQuit},
		{Key: "tab", Command: CmdSwitchPanel},
		{Key: "ctrl+u", Command: CmdSwapPanels},
		{Key: "ctrl+y", Command: CmdCopyPath},
	}
	for _, b := range global {
		b.Context = ContextGlobal
		r.RegisterBinding(b)
	}

	panel := []Binding{
		{Key: "up", Command: CmdUp},
		{Key: "k", Command: CmdUp},
		{Key: "down", Command: CmdDown},
		{Key: "j", Command: CmdDown},
		{Key: "pgup", Command: CmdPageUp},
		{Key: "pgdown", Command: CmdPageDown},
		{Key: "home", Command: CmdHome},
		{Key: "end", Command: CmdEnd},
		{Key: "g g", Command: CmdHome},
		{Key: "G", Command: CmdEnd},
		{Key: "H", Command: CmdViewTop},
		{Key: "M", Command: CmdViewMiddle},
		{Key: "L", Command: CmdViewBottom},
		{Key: "enter", Command: CmdEnter},
		{Key: "right", Command: CmdEnter},
		{Key: "left", Command: CmdUpDir},
		{Key: "backspace", Command: CmdUpDir},
		{Key: "alt+left", Command: CmdScrollLeft},
		{Key: "alt+right", Command: CmdScrollRight},
		{Key: "ctrl+r", Command: CmdReload},
		{Key: "-", Command: CmdHistoryBack},
		{Key: ".", Command: CmdToggleHidden},

		{Key: "space", Command: CmdMark},
		{Key: "insert", Command: CmdMark},
		{Key: "shift+down", Command: CmdMarkDown},
		{Key: "shift+up", Command: CmdMarkUp},
		{Key: "+", Command: CmdSelectGlob},
		{Key: "\\", Command: CmdUnselectGlob},
		{Key: "*", Command: CmdInvertMarks},
		{Key: "u", Command: CmdUnmarkAll},

		{Key: "/", Command: CmdSearch},
		{Key: "ctrl+s", Command: CmdSearch},

		{Key: "alt+t", Command: CmdListingMode},

		{Key: "s n", Command: CmdSortName},
		{Key: "s e", Command: CmdSortExt},
		{Key: "s s", Command: CmdSortSize},
		{Key: "s m", Command: CmdSortMTime},
		{Key: "s u", Command: CmdSortUnsorted},
		{Key: "s r", Command: CmdSortReverse},
		{Key: "<", Command: CmdSortPrev},
		{Key: ">", Command: CmdSortNext},

		{Key: "ctrl+t", Command: CmdTabNew},
		{Key: "ctrl+w", Command: CmdTabClose},
		{Key: "alt+.", Command: CmdTabNext},
		{Key: "alt+,", Command: CmdTabPrev},
		{Key: "t m", Command: CmdTabMove},
		{Key: "t c", Command: CmdTabCopy},
		{Key: "t r", Command: CmdTabRename},
		{Key: "t t", Command: CmdTabSwap},
		{Key: "t s", Command: CmdSessionSave},
		{Key: "t l", Command: CmdSessionLoad},
	}
	for i := 1; i <= 9; i++ {
		panel = append(panel, Binding{
			Key:     fmt.Sprintf("alt+%d", i),
			Command: fmt.Sprintf("%s%d", CmdTabGotoPrefix, i),
		})
	}
	for _, b := range panel {
		b.Context = ContextPanel
		r.RegisterBinding(b)
	}
}
