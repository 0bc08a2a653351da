package poker

import (
	"strconv"
	"testing"
)

// TestDraftCommitNumbersRounds checks 1..N numbering for every N
func TestDraftCommitNumbersRounds(t *testing.T) {
	rows := []DraftRow{
		{Minutes: "15", SmallBlind: "25", BigBlind: "50"},
		{Minutes: "15", SmallBlind: "50", BigBlind: "100"},
		{Minutes: "20", SmallBlind: "100", BigBlind: "200"},
	}
	for n := 0; n <= 8; n++ {
		d := Draft{Count: strconv.Itoa(n), Rows: rows}
		got, count := d.Commit(3)
		if count != n || len(got) != n {
			t.Fatalf("Commit() with count %d returned %d rounds (count %d)", n, len(got), count)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("count %d: %v", n, err)
		}
	}
}

func TestDraftCommit(t *testing.T) {
	tests := []struct {
		name     string
		draft    Draft
		previous int
		want     Sequence
	}{
		{
			name: "well formed",
			draft: Draft{Count: "2", Rows: []DraftRow{
				{Minutes: "30", SmallBlind: "1000", BigBlind: "2000"},
				{Minutes: "20", SmallBlind: "2000", BigBlind: "4000"},
			}},
			want: sampleRounds(),
		},
		{
			name: "surrounding spaces",
			draft: Draft{Count: " 1 ", Rows: []DraftRow{
				{Minutes: " 30", SmallBlind: "1000 ", BigBlind: " 2000 "},
			}},
			want: Sequence{NewRound(1, 30, 1000, 2000)},
		},
		{
			name: "count beyond rows pads with zero rounds",
			draft: Draft{Count: "3", Rows: []DraftRow{
				{Minutes: "30", SmallBlind: "1000", BigBlind: "2000"},
			}},
			want: Sequence{NewRound(1, 30, 1000, 2000), {Number: 2}, {Number: 3}},
		},
		{
			name: "count below rows truncates",
			draft: Draft{Count: "1", Rows: []DraftRow{
				{Minutes: "30", SmallBlind: "1000", BigBlind: "2000"},
				{Minutes: "20", SmallBlind: "2000", BigBlind: "4000"},
			}},
			want: Sequence{NewRound(1, 30, 1000, 2000)},
		},
		{
			name: "unparseable field zeroes the round",
			draft: Draft{Count: "2", Rows: []DraftRow{
				{Minutes: "30", SmallBlind: "lots", BigBlind: "2000"},
				{Minutes: "20", SmallBlind: "2000", BigBlind: "4000"},
			}},
			want: Sequence{{Number: 1}, NewRound(2, 20, 2000, 4000)},
		},
		{
			name: "negative field zeroes the round",
			draft: Draft{Count: "1", Rows: []DraftRow{
				{Minutes: "-5", SmallBlind: "10", BigBlind: "20"},
			}},
			want: Sequence{{Number: 1}},
		},
		{
			name: "unparseable count keeps previous",
			draft: Draft{Count: "abc", Rows: []DraftRow{
				{Minutes: "30", SmallBlind: "1000", BigBlind: "2000"},
				{Minutes: "20", SmallBlind: "2000", BigBlind: "4000"},
			}},
			previous: 2,
			want:     sampleRounds(),
		},
		{
			name:     "negative count keeps previous",
			draft:    Draft{Count: "-2"},
			previous: 1,
			want:     Sequence{{Number: 1}},
		},
		{
			name:  "zero count",
			draft: Draft{Count: "0", Rows: []DraftRow{{Minutes: "30", SmallBlind: "1", BigBlind: "2"}}},
			want:  Sequence{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := tt.draft.Commit(tt.previous)
			if count != len(tt.want) {
				t.Errorf("count = %d, want %d", count, len(tt.want))
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Commit() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("round %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDraftRoundCount(t *testing.T) {
	tests := []struct {
		count    string
		previous int
		want     int
	}{
		{count: "12", previous: 3, want: 12},
		{count: "0", previous: 3, want: 0},
		{count: "1000", previous: 3, want: MaxRounds},
		{count: "1001", previous: 3, want: 3},
		{count: "4000000000", previous: 3, want: 3},
		{count: "99999999999999999999", previous: 2, want: 2},
		{count: "x", previous: 5, want: 5},
		{count: "x", previous: -1, want: 0},
		{count: "x", previous: 5000, want: MaxRounds},
	}
	for _, tt := range tests {
		if got := (Draft{Count: tt.count}).RoundCount(tt.previous); got != tt.want {
			t.Errorf("RoundCount(%q, %d) = %d, want %d", tt.count, tt.previous, got, tt.want)
		}
	}
}

func TestDraftCommitOversizedCountKeepsPrevious(t *testing.T) {
	d := Draft{Count: "4000000000", Rows: []DraftRow{{Minutes: "30", SmallBlind: "1000", BigBlind: "2000"}}}
	got, count := d.Commit(1)
	if count != 1 || len(got) != 1 {
		t.Fatalf("Commit() = %d rounds (count %d), want 1", len(got), count)
	}
	if got[0] != NewRound(1, 30, 1000, 2000) {
		t.Errorf("round = %+v", got[0])
	}
}

func TestDraftFromRoundTrip(t *testing.T) {
	rounds := sampleRounds()
	got, _ := DraftFrom(rounds).Commit(0)
	if len(got) != len(rounds) {
		t.Fatalf("got %d rounds, want %d", len(got), len(rounds))
	}
	for i := range rounds {
		if got[i] != rounds[i] {
			t.Errorf("round %d = %+v, want %+v", i, got[i], rounds[i])
		}
	}
}
