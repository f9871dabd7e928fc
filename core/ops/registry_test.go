package ops_test

import (
	"context"
	"testing"

	"github.com/tokuplus/tokubot/core/chat"
	"github.com/tokuplus/tokubot/core/ops"
)

type mockOp struct {
	name     string
	commands []string
}

func (m *mockOp) Name() string       { return m.name }
func (m *mockOp) Commands() []string { return m.commands }
func (m *mockOp) Execute(_ context.Context, _ chat.Event, _ chat.Sink) error {
	return nil
}

type mockTextOp struct{}

func (mockTextOp) Name() string { return "text" }
func (mockTextOp) Execute(_ context.Context, _ chat.Event, _ string, _ chat.Sink) error {
	return nil
}

func TestRegisterAndGet(t *testing.T) {
	op := &mockOp{name: "test", commands: []string{"test"}}
	r, err := ops.NewRegistry(nil, op)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	got := r.Get("test")
	if got == nil {
		t.Fatal("expected op, got nil")
	}
	if got.Name() != "test" {
		t.Errorf("name = %q, want %q", got.Name(), "test")
	}
}

func TestAliasesRouteToSameOp(t *testing.T) {
	op := &mockOp{name: "donation", commands: []string{"doacao", "ajudar", "pix"}}
	r, err := ops.NewRegistry(nil, op)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	for _, alias := range []string{"doacao", "ajudar", "pix"} {
		if got := r.Get(alias); got != op {
			t.Errorf("Get(%q) = %v, want donation op", alias, got)
		}
	}
}

func TestGetNotFound(t *testing.T) {
	r, _ := ops.NewRegistry(nil, &mockOp{name: "a", commands: []string{"a"}})
	if got := r.Get("missing"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestGetIsCaseSensitive(t *testing.T) {
	r, _ := ops.NewRegistry(nil, &mockOp{name: "wpp", commands: []string{"wpp"}})
	if got := r.Get("WPP"); got != nil {
		t.Errorf("Get(WPP) = %v, want nil", got)
	}
}

func TestDuplicateAlias(t *testing.T) {
	first := &mockOp{name: "first", commands: []string{"dup"}}
	second := &mockOp{name: "second", commands: []string{"other", "dup"}}

	if _, err := ops.NewRegistry(nil, first, second); err == nil {
		t.Fatal("expected error on duplicate alias")
	}
}

func TestEmptyAliases(t *testing.T) {
	if _, err := ops.NewRegistry(nil, &mockOp{name: "none"}); err == nil {
		t.Error("expected error for op without commands")
	}
	if _, err := ops.NewRegistry(nil, &mockOp{name: "blank", commands: []string{""}}); err == nil {
		t.Error("expected error for empty command")
	}
}

func TestCommandsSorted(t *testing.T) {
	r, _ := ops.NewRegistry(nil,
		&mockOp{name: "x", commands: []string{"pix", "ajudar"}},
		&mockOp{name: "y", commands: []string{"wpp"}},
	)

	got := r.Commands()
	want := []string{"ajudar", "pix", "wpp"}
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("commands[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestText(t *testing.T) {
	r, _ := ops.NewRegistry(nil)
	if r.Text() != nil {
		t.Error("expected nil text op")
	}

	r, _ = ops.NewRegistry(mockTextOp{})
	if r.Text() == nil {
		t.Error("expected text op")
	}
}

func TestDefaultsRegisterCleanly(t *testing.T) {
	r, err := ops.NewRegistry(nil, ops.Defaults(nil)...)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	for _, alias := range []string{"navegador", "web", "computador", "wpp", "enviado", "doacao", "ajudar", "pix"} {
		if r.Get(alias) == nil {
			t.Errorf("alias %q not registered", alias)
		}
	}
	if len(r.Commands()) != 8 {
		t.Errorf("registered %d commands, want 8", len(r.Commands()))
	}
}
