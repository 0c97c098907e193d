package mode

import "testing"

func TestLinePromptModeAccumulatesAndSubmits(t *testing.T) {
	var got string
	m := NewLinePromptMode(func(editor Editor, text string) { got = text })
	e := newFakeEditor("")
	m.ProcessInput("h", e)
	m.ProcessInput("i", e)
	m.ProcessInput("enter", e)
	if got != "hi" {
		t.Fatalf("handler received %q, want %q", got, "hi")
	}
}

func TestLinePromptModeEscSubmitsEmptyString(t *testing.T) {
	called := false
	var got string
	m := NewLinePromptMode(func(editor Editor, text string) { called = true; got = text })
	e := newFakeEditor("")
	m.ProcessInput("x", e)
	m.ProcessInput("esc", e)
	if !called {
		t.Fatalf("expected handler to be called on esc")
	}
	if got != "" {
		t.Fatalf("esc should submit the empty string, got %q", got)
	}
}

func TestLinePromptModeBackspace(t *testing.T) {
	m := NewLinePromptMode(nil)
	e := newFakeEditor("")
	m.ProcessInput("a", e)
	m.ProcessInput("b", e)
	m.ProcessInput("backspace", e)
	if m.Text() != "a" {
		t.Fatalf("Text() = %q, want %q", m.Text(), "a")
	}
}
