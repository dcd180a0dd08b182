package telegram

import (
	"testing"

	"github.com/m3rciful/dongibot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func noop(c tele.Context) error { return nil }

func TestRegistryCommands(t *testing.T) {
	reg := NewRegistry()

	reg.RegisterCommand("/report", commands.Command{Handler: noop, Description: "Settlement report"})
	reg.RegisterCommand("/users", commands.Command{Handler: noop, Description: "List users", AdminOnly: true})
	reg.RegisterCommand("no-slash", commands.Command{Handler: noop, Description: "invalid"})
	reg.RegisterCommand("/report", commands.Command{Handler: noop, Description: "duplicate"})

	if len(reg.Commands()) != 2 {
		t.Fatalf("commands = %d, want 2", len(reg.Commands()))
	}

	visible := reg.ListCommands(true)
	if len(visible) != 1 || visible[0].Text != "/report" {
		t.Fatalf("visible = %+v", visible)
	}

	if _, _, ok := reg.LookupCommand("report"); !ok {
		t.Fatal("lookup without slash should resolve")
	}
	if _, _, ok := reg.LookupCommand("/missing"); ok {
		t.Fatal("unknown command should not resolve")
	}
}

func TestRegistryCommandAliases(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/expenses", commands.Command{
		Handler:     noop,
		Description: "List expenses",
		Aliases:     []string{"myexpenses"},
	})

	key, _, ok := reg.LookupCommand("/myexpenses")
	if !ok || key != "/expenses" {
		t.Fatalf("alias lookup = (%q, %v)", key, ok)
	}
}

func TestRegistryCallbacks(t *testing.T) {
	reg := NewRegistry()

	if err := reg.RegisterCallback("menu_report", noop); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCallback("menu_report", noop); err == nil {
		t.Fatal("duplicate registration should fail")
	}
	if err := reg.RegisterCallback("", noop); err == nil {
		t.Fatal("empty key should fail")
	}

	if _, ok := reg.GetCallback("menu_report"); !ok {
		t.Fatal("callback should resolve")
	}
	if got := reg.ListCallbacks(); len(got) != 1 || got[0] != "menu_report" {
		t.Fatalf("callbacks = %v", got)
	}
}
