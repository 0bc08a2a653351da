package main

import (
	"testing"

	"atomicgo.dev/keyboard/keys"

	"github.com/luca-patrignani/poker-time/application"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name string
		key  keys.Key
		want action
	}{
		{name: "space", key: keys.Key{Code: keys.Space}, want: actionToggle},
		{name: "ctrl+c", key: keys.Key{Code: keys.CtrlC}, want: actionQuit},
		{name: "escape", key: keys.Key{Code: keys.Escape}, want: actionQuit},
		{name: "n", key: keys.Key{Code: keys.RuneKey, Runes: []rune("n")}, want: actionNext},
		{name: "t", key: keys.Key{Code: keys.RuneKey, Runes: []rune("t")}, want: actionResetTimer},
		{name: "g", key: keys.Key{Code: keys.RuneKey, Runes: []rune("g")}, want: actionRestart},
		{name: "e", key: keys.Key{Code: keys.RuneKey, Runes: []rune("e")}, want: actionEdit},
		{name: "o", key: keys.Key{Code: keys.RuneKey, Runes: []rune("o")}, want: actionOverview},
		{name: "x", key: keys.Key{Code: keys.RuneKey, Runes: []rune("x")}, want: actionExport},
		{name: "i", key: keys.Key{Code: keys.RuneKey, Runes: []rune("i")}, want: actionImport},
		{name: "q", key: keys.Key{Code: keys.RuneKey, Runes: []rune("q")}, want: actionQuit},
		{name: "unbound rune", key: keys.Key{Code: keys.RuneKey, Runes: []rune("z")}, want: actionNone},
		{name: "enter", key: keys.Key{Code: keys.Enter}, want: actionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionForKey(tt.key); got != tt.want {
				t.Errorf("actionForKey(%v) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestActionCommand(t *testing.T) {
	tests := []struct {
		action action
		want   application.CommandType
		ok     bool
	}{
		{actionToggle, application.CmdToggle, true},
		{actionNext, application.CmdAdvance, true},
		{actionResetTimer, application.CmdResetTimer, true},
		{actionRestart, application.CmdRestart, true},
		{actionEdit, 0, false},
		{actionImport, 0, false},
		{actionQuit, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.action.command()
		if got != tt.want || ok != tt.ok {
			t.Errorf("action(%d).command() = (%s, %v), want (%s, %v)", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}
