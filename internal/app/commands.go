package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/panes/internal/config"
	"github.com/wilbur182/panes/internal/keymap"
	"github.com/wilbur182/panes/internal/listfmt"
	"github.com/wilbur182/panes/internal/match"
	"github.com/wilbur182/panes/internal/tabs"
)

// commandIDs is every command the app handles. Each gets a handler that
// round-trips the ID through a commandMsg so runCommand can mutate the
// model on the Update goroutine.
var commandIDs = []string{
	keymap.CmdQuit,
	keymap.CmdSwitchPanel,
	keymap.CmdSwapPanels,
	keymap.CmdCopyPath,

	keymap.CmdUp,
	keymap.CmdDown,
	keymap.CmdPageUp,
	keymap.CmdPageDown,
	keymap.CmdHome,
	keymap.CmdEnd,
	keymap.CmdViewTop,
	keymap.CmdViewMiddle,
	keymap.CmdViewBottom,
	keymap.CmdEnter,
	keymap.CmdUpDir,
	keymap.CmdScrollLeft,
	keymap.CmdScrollRight,
	keymap.CmdReload,
	keymap.CmdHistoryBack,
	keymap.CmdToggleHidden,

	keymap.CmdMark,
	keymap.CmdMarkDown,
	keymap.CmdMarkUp,
	keymap.CmdSelectGlob,
	keymap.CmdUnselectGlob,
	keymap.CmdInvertMarks,
	keymap.CmdUnmarkAll,

	keymap.CmdSearch,
	keymap.CmdListingMode,

	keymap.CmdSortName,
	keymap.CmdSortExt,
	keymap.CmdSortSize,
	keymap.CmdSortMTime,
	keymap.CmdSortUnsorted,
	keymap.CmdSortNext,
	keymap.CmdSortPrev,
	keymap.CmdSortReverse,

	keymap.CmdTabNew,
	keymap.CmdTabClose,
	keymap.CmdTabNext,
	keymap.CmdTabPrev,
	keymap.CmdTabMove,
	keymap.CmdTabCopy,
	keymap.CmdTabRename,
	keymap.CmdTabSwap,
	keymap.CmdSessionSave,
	keymap.CmdSessionLoad,
}

func registerCommands(r *keymap.Registry) {
	ids := commandIDs
	for i := 1; i <= 9; i++ {
		ids = append(ids, fmt.Sprintf("%s%d", keymap.CmdTabGotoPrefix, i))
	}
	for _, id := range ids {
		r.RegisterCommand(keymap.Command{
			ID: id,
			Handler: func() tea.Cmd {
				return func() tea.Msg { return commandMsg{id: id} }
			},
		})
	}
}

// runCommand executes one dispatched command against the model.
func (m Model) runCommand(id string) (Model, tea.Cmd) {
	p := m.active()
	f := m.tabs.Focused

	switch id {
	case keymap.CmdQuit:
		m.persistState()
		return m, tea.Quit

	case keymap.CmdSwitchPanel:
		m.tabs.Focused = 1 - m.tabs.Focused
	case keymap.CmdSwapPanels:
		if m.tabs.Swap() {
			m.panes[0].p, m.panes[1].p = m.panes[1].p, m.panes[0].p
			m.tabs.Focused = 1 - m.tabs.Focused
		}
	case keymap.CmdCopyPath:
		if err := clipboard.WriteAll(p.CurrentPath()); err != nil {
			m.ShowError(fmt.Errorf("clipboard: %w", err))
		} else {
			m.ShowToast("path copied")
		}

	case keymap.CmdUp:
		p.MoveUp()
	case keymap.CmdDown:
		p.MoveDown()
	case keymap.CmdPageUp:
		p.PrevPage()
	case keymap.CmdPageDown:
		p.NextPage()
	case keymap.CmdHome:
		p.MoveHome()
	case keymap.CmdEnd:
		p.MoveEnd()
	case keymap.CmdViewTop:
		p.MoveViewTop()
	case keymap.CmdViewMiddle:
		p.MoveViewMiddle()
	case keymap.CmdViewBottom:
		p.MoveViewBottom()
	case keymap.CmdEnter:
		if _, err := p.EnterSelected(); err != nil {
			m.ShowError(err)
		}
	case keymap.CmdUpDir:
		if parent := filepath.Dir(p.Dir); parent != p.Dir {
			if err := p.ChangeDir(parent); err != nil {
				m.ShowError(err)
			}
		}
	case keymap.CmdScrollLeft:
		p.ScrollContentLeft()
	case keymap.CmdScrollRight:
		p.ScrollContentRight()
	case keymap.CmdReload:
		if err := p.Load(); err != nil {
			m.ShowError(err)
		}
	case keymap.CmdHistoryBack:
		if dir := p.History().Pop(); dir != "" {
			if err := p.ChangeDir(dir); err != nil {
				m.ShowError(err)
			}
		}
	case keymap.CmdToggleHidden:
		opts := p.Opts()
		opts.ShowHidden = !opts.ShowHidden
		p.SetOptions(opts)
		if err := p.Load(); err != nil {
			m.ShowError(err)
		}

	case keymap.CmdMark:
		p.ToggleMark()
	case keymap.CmdMarkDown:
		p.MarkForward()
	case keymap.CmdMarkUp:
		p.MarkBackward()
	case keymap.CmdSelectGlob:
		m.openPrompt(promptSelectGlob, "Select files matching:")
	case keymap.CmdUnselectGlob:
		m.openPrompt(promptUnselectGlob, "Unselect files matching:")
	case keymap.CmdInvertMarks:
		p.InvertMarks(true)
	case keymap.CmdUnmarkAll:
		p.UnmarkAll()

	case keymap.CmdSearch:
		p.StartSearch()

	case keymap.CmdListingMode:
		m.cycleListingMode()

	case keymap.CmdSortName:
		m.setSort("name")
	case keymap.CmdSortExt:
		m.setSort("extension")
	case keymap.CmdSortSize:
		m.setSort("size")
	case keymap.CmdSortMTime:
		m.setSort("mtime")
	case keymap.CmdSortUnsorted:
		m.setSort("unsorted")
	case keymap.CmdSortNext:
		p.NextSortField()
	case keymap.CmdSortPrev:
		p.PrevSortField()
	case keymap.CmdSortReverse:
		p.ToggleReverse()

	case keymap.CmdTabNew:
		m.tabs.NewTab(f)
	case keymap.CmdTabClose:
		if err := m.tabs.Close(f); err != nil {
			m.ShowError(err)
		}
	case keymap.CmdTabNext:
		m.tabs.Change(f, tabs.Next)
	case keymap.CmdTabPrev:
		m.tabs.Change(f, tabs.Prev)
	case keymap.CmdTabMove:
		if err := m.tabs.MoveToOther(f); err != nil {
			m.ShowError(err)
		}
	case keymap.CmdTabCopy:
		m.tabs.CopyToOther(f)
	case keymap.CmdTabRename:
		m.openPrompt(promptRenameTab, "Tab name:")
	case keymap.CmdTabSwap:
		if m.tabs.Swap() {
			m.panes[0].p, m.panes[1].p = m.panes[1].p, m.panes[0].p
			m.tabs.Focused = 1 - m.tabs.Focused
		}
	case keymap.CmdSessionSave:
		m.openPrompt(promptSaveSession, "Save session as:")
	case keymap.CmdSessionLoad:
		m.openPrompt(promptLoadSession, "Load session:")

	default:
		if n, ok := strings.CutPrefix(id, keymap.CmdTabGotoPrefix); ok {
			if i, err := strconv.Atoi(n); err == nil {
				m.tabs.GotoTab(f, i-1)
			}
		}
	}

	m.refresh()
	return m, nil
}

// persistState writes the options toggled at runtime back to the config
// file so the next start picks them up.
func (m *Model) persistState() {
	if m.configPath == "" {
		return
	}
	p := m.active()
	m.cfg.Panels.ShowHidden = p.Opts().ShowHidden
	m.cfg.Panels.Format = p.FormatString()
	if err := config.SaveTo(m.configPath, m.cfg); err != nil {
		m.log.Warn("config save failed", "path", m.configPath, "error", err)
	}
}

// cycleListingMode steps the focused panel through the brief, long, and
// configured listings. The long listing is the only full-frame one.
func (m *Model) cycleListingMode() {
	p := m.active()
	var next string
	switch p.FormatString() {
	case listfmt.BriefFormat:
		next = listfmt.LongFormat
	case listfmt.LongFormat:
		next = m.cfg.Panels.Format
		if next == "" || next == listfmt.LongFormat {
			next = listfmt.DefaultFormat
		}
	default:
		next = listfmt.BriefFormat
	}
	if err := p.SetFormat(next); err != nil {
		m.ShowError(err)
	}
}

// setSort surfaces the unsorted reload error; the other fields cannot fail.
func (m *Model) setSort(field string) {
	if err := m.active().SetSortField(field); err != nil {
		m.ShowError(err)
	}
}

// openPrompt readies the bottom-line input for one question.
func (m *Model) openPrompt(kind promptKind, label string) {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40
	m.prompt = kind
	m.promptLabel = label
	m.promptInput = ti
}

// acceptPrompt applies the entered value for the open prompt.
func (m Model) acceptPrompt() (Model, tea.Cmd) {
	kind := m.prompt
	value := strings.TrimSpace(m.promptInput.Value())
	m.prompt = promptNone

	p := m.active()
	f := m.tabs.Focused

	switch kind {
	case promptRenameTab:
		m.tabs.Rename(f, value)

	case promptSelectGlob, promptUnselectGlob:
		if value == "" {
			return m, nil
		}
		mr, err := match.Compile(value, match.Options{
			Kind:          match.Glob,
			CaseSensitive: p.Opts().CaseSensitive,
			WholeLine:     true,
		})
		if err != nil {
			m.ShowError(err)
			return m, nil
		}
		mark := kind == promptSelectGlob
		n := p.MarkPattern(mr, mark, true)
		if mark {
			m.ShowToast(fmt.Sprintf("%d files selected", n))
		} else {
			m.ShowToast(fmt.Sprintf("%d files unselected", n))
		}

	case promptSaveSession:
		if value == "" {
			return m, nil
		}
		if err := m.tabs.SaveFile(m.sessionsDir, value); err != nil {
			m.ShowError(err)
		} else {
			m.ShowToast("session saved: " + value)
		}

	case promptLoadSession:
		if value == "" {
			names, err := tabs.ListSessions(m.sessionsDir)
			if err != nil {
				m.ShowError(err)
			} else if len(names) == 0 {
				m.ShowToast("no saved sessions")
			} else {
				m.ShowToast("sessions: " + strings.Join(names, ", "))
			}
			return m, nil
		}
		err := m.tabs.RestoreFile(m.sessionsDir, value)
		switch {
		case err == nil:
			m.ShowToast("session loaded: " + value)
		case errors.Is(err, tabs.ErrCorruptSession):
			m.ShowError(fmt.Errorf("session %s partially restored: %w", value, err))
		default:
			m.ShowError(err)
		}
	}

	m.refresh()
	return m, nil
}
