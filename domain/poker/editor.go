package poker

import (
	"strconv"
	"strings"
)

// MaxRounds is the largest round count the editor accepts.
const MaxRounds = 1000

// DraftRow holds the raw text typed for one round.
type DraftRow struct {
	Minutes    string
	SmallBlind string
	BigBlind   string
}

// Draft is the editor's unparsed input: the requested round count and one
// row per round already shown.
type Draft struct {
	Count string
	Rows  []DraftRow
}

// DraftFrom pre-fills a draft with the rounds of s.
func DraftFrom(s Sequence) Draft {
	d := Draft{
		Count: strconv.Itoa(len(s)),
		Rows:  make([]DraftRow, len(s)),
	}
	for i, r := range s {
		d.Rows[i] = DraftRow{
			Minutes:    strconv.FormatUint(uint64(r.Minutes), 10),
			SmallBlind: strconv.FormatUint(uint64(r.SmallBlind), 10),
			BigBlind:   strconv.FormatUint(uint64(r.BigBlind), 10),
		}
	}
	return d
}

// RoundCount parses the requested count. Anything that is not an integer in
// 0..MaxRounds falls back to previous.
func (d Draft) RoundCount(previous int) int {
	count := previous
	if n, err := parseUint(d.Count); err == nil && n <= MaxRounds {
		count = int(n)
	}
	return min(max(count, 0), MaxRounds)
}

// Commit turns the draft into a sequence of exactly N rounds numbered 1..N,
// N being RoundCount(previous). A missing row or any field that is not a
// non-negative integer yields a zero-valued round. The count actually used is
// returned alongside.
func (d Draft) Commit(previous int) (Sequence, int) {
	count := d.RoundCount(previous)
	rounds := make(Sequence, count)
	for i := range rounds {
		rounds[i] = d.round(i)
	}
	return rounds, count
}

func (d Draft) round(i int) Round {
	number := uint(i + 1)
	if i >= len(d.Rows) {
		return Round{Number: number}
	}
	row := d.Rows[i]
	minutes, err := parseUint(row.Minutes)
	if err != nil {
		return Round{Number: number}
	}
	small, err := parseUint(row.SmallBlind)
	if err != nil {
		return Round{Number: number}
	}
	big, err := parseUint(row.BigBlind)
	if err != nil {
		return Round{Number: number}
	}
	return NewRound(number, minutes, small, big)
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
