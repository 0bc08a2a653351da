package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

// prompter asks one question and returns the raw answer.
type prompter interface {
	Ask(label, defaultValue string) (string, error)
}

type ptermPrompter struct{}

func (ptermPrompter) Ask(label, defaultValue string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(label).WithDefaultValue(defaultValue).Show()
	pterm.Println()
	return answer, err
}

// editRounds walks the user through the round count and then every row,
// prefilled with the current structure. Invalid answers are not rejected:
// they become zero rounds once the draft is committed.
func editRounds(p prompter, current poker.Sequence) (poker.Sequence, error) {
	draft := poker.DraftFrom(current)

	count, err := p.Ask("Number of rounds", draft.Count)
	if err != nil {
		return nil, err
	}
	draft.Count = count
	n := draft.RoundCount(len(current))

	rows := make([]poker.DraftRow, n)
	for i := range rows {
		if i < len(draft.Rows) {
			rows[i] = draft.Rows[i]
		}
		if rows[i].Minutes, err = p.Ask(fmt.Sprintf("Round %d time (minutes)", i+1), rows[i].Minutes); err != nil {
			return nil, err
		}
		if rows[i].SmallBlind, err = p.Ask(fmt.Sprintf("Round %d small blind", i+1), rows[i].SmallBlind); err != nil {
			return nil, err
		}
		if rows[i].BigBlind, err = p.Ask(fmt.Sprintf("Round %d big blind", i+1), rows[i].BigBlind); err != nil {
			return nil, err
		}
	}
	draft.Rows = rows

	rounds, _ := draft.Commit(len(current))
	return rounds, nil
}
