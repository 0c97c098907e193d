// Package status implements the single status line beneath the active
// widget: updated via Set(text), with warnings rendered in a distinct
// modifier.
package status

import "github.com/alefore/edge-sub002/internal/line"

type Level int

const (
	Info Level = iota
	Warning
)

type Status struct {
	text  string
	level Level
}

func New() *Status { return &Status{} }

func (s *Status) Set(text string) {
	s.text = text
	s.level = Info
}

func (s *Status) SetWarning(text string) {
	s.text = text
	s.level = Warning
}

func (s *Status) Clear() {
	s.text = ""
	s.level = Info
}

func (s *Status) Text() string { return s.text }
func (s *Status) Level() Level { return s.level }

// Modifiers returns the display modifiers the status line should be
// rendered with.
func (s *Status) Modifiers() line.ModifierSet {
	if s.level == Warning {
		return line.ModifierSet{line.ModifierYellow, line.ModifierBold}
	}
	return nil
}
