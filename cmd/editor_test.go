package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

// scriptedPrompter answers questions in order and records the defaults it
// was offered.
type scriptedPrompter struct {
	answers  []string
	defaults []string
}

func (p *scriptedPrompter) Ask(_, defaultValue string) (string, error) {
	p.defaults = append(p.defaults, defaultValue)
	if len(p.answers) == 0 {
		return "", errors.New("no more answers")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func TestEditRounds(t *testing.T) {
	current := poker.Sequence{poker.NewRound(1, 20, 500, 1000)}

	tests := []struct {
		name    string
		answers []string
		want    poker.Sequence
	}{
		{
			name:    "keep and extend",
			answers: []string{"2", "20", "500", "1000", "15", "1000", "2000"},
			want: poker.Sequence{
				poker.NewRound(1, 20, 500, 1000),
				poker.NewRound(2, 15, 1000, 2000),
			},
		},
		{
			name:    "invalid field zeroes the round",
			answers: []string{"1", "twenty", "500", "1000"},
			want:    poker.Sequence{{Number: 1}},
		},
		{
			name:    "invalid count keeps previous",
			answers: []string{"many", "30", "100", "200"},
			want:    poker.Sequence{poker.NewRound(1, 30, 100, 200)},
		},
		{
			name:    "oversized count keeps previous",
			answers: []string{"4000000000", "30", "100", "200"},
			want:    poker.Sequence{poker.NewRound(1, 30, 100, 200)},
		},
		{
			name:    "zero rounds",
			answers: []string{"0"},
			want:    poker.Sequence{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPrompter{answers: tt.answers}
			got, err := editRounds(p, current)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Empty(t, p.answers)
		})
	}
}

func TestEditRounds_PrefillsCurrentValues(t *testing.T) {
	current := poker.Sequence{poker.NewRound(1, 20, 500, 1000)}
	p := &scriptedPrompter{answers: []string{"2", "20", "500", "1000", "1", "2", "3"}}

	_, err := editRounds(p, current)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "20", "500", "1000", "", "", ""}, p.defaults)
}

func TestEditRounds_PromptError(t *testing.T) {
	_, err := editRounds(&scriptedPrompter{answers: []string{"3", "10"}}, nil)
	require.Error(t, err)
}
