package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func register(r *Registry, id string, fired *string) {
	r.RegisterCommand(Command{
		ID: id,
		Handler: func() tea.Cmd {
			*fired = id
			return nil
		},
	})
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()
	var fired string
	register(r, CmdDown, &fired)
	r.RegisterBinding(Binding{Key: "j", Command: CmdDown, Context: ContextPanel})

	r.Handle(keyMsg("j"), ContextPanel)
	if fired != CmdDown {
		t.Errorf("expected %s fired, got %q", CmdDown, fired)
	}
}

func TestRegistry_ContextPrecedence(t *testing.T) {
	r := NewRegistry()
	var fired string
	register(r, "panel-cmd", &fired)
	register(r, "global-cmd", &fired)
	r.RegisterBinding(Binding{Key: "x", Command: "global-cmd", Context: ContextGlobal})
	r.RegisterBinding(Binding{Key: "x", Command: "panel-cmd", Context: ContextPanel})

	r.Handle(keyMsg("x"), ContextPanel)
	if fired != "panel-cmd" {
		t.Errorf("expected panel binding to win, got %q", fired)
	}

	fired = ""
	r.Handle(keyMsg("x"), ContextGlobal)
	if fired != "global-cmd" {
		t.Errorf("expected global binding, got %q", fired)
	}
}

func TestRegistry_UserOverrideWins(t *testing.T) {
	r := NewRegistry()
	var fired string
	register(r, "bound", &fired)
	register(r, "override", &fired)
	r.RegisterBinding(Binding{Key: "y", Command: "bound", Context: ContextGlobal})
	r.SetUserOverride("y", "override")

	r.Handle(keyMsg("y"), ContextGlobal)
	if fired != "override" {
		t.Errorf("expected override, got %q", fired)
	}
}

func TestRegistry_Sequence(t *testing.T) {
	r := NewRegistry()
	var fired string
	register(r, CmdSortName, &fired)
	r.RegisterBinding(Binding{Key: "s n", Command: CmdSortName, Context: ContextPanel})

	r.Handle(keyMsg("s"), ContextPanel)
	if fired != "" {
		t.Fatalf("expected pending sequence, fired %q", fired)
	}
	if !r.HasPending() {
		t.Fatal("expected pending key")
	}
	r.Handle(keyMsg("n"), ContextPanel)
	if fired != CmdSortName {
		t.Errorf("expected sequence command, got %q", fired)
	}
}

func TestRegistry_Unbound(t *testing.T) {
	r := NewRegistry()
	if cmd := r.Handle(keyMsg("z"), ContextPanel); cmd != nil {
		t.Error("expected nil for unbound key")
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	if len(r.BindingsForContext(ContextGlobal)) == 0 {
		t.Error("expected global bindings")
	}
	if len(r.BindingsForContext(ContextPanel)) == 0 {
		t.Error("expected panel bindings")
	}
}
