package main

import (
	"strconv"
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

var chipPrinter = message.NewPrinter(language.English)

const keyHelp = "[space] start/pause  [n] next round  [t] reset timer  [g] restart game  [e] edit  [o] overview  [x] export  [i] import  [q] quit"

// formatChips renders a blind amount with thousands separators.
func formatChips(amount uint) string {
	return chipPrinter.Sprintf("%d", amount)
}

// terminalRenderer draws the live clock into a pterm area. It can be
// suspended while interactive prompts own the terminal.
type terminalRenderer struct {
	mu        sync.Mutex
	area      *pterm.AreaPrinter
	view      poker.View
	ok        bool
	flash     bool
	suspended bool
}

func newTerminalRenderer() *terminalRenderer {
	return &terminalRenderer{suspended: true}
}

func (r *terminalRenderer) Render(view poker.View, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view, r.ok = view, ok
	r.draw()
}

func (r *terminalRenderer) Flash(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flash = on
	r.draw()
}

// Resume (re)starts the area and redraws the last view.
func (r *terminalRenderer) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	area, err := pterm.DefaultArea.WithRemoveWhenDone().Start()
	if err != nil {
		return err
	}
	r.area = area
	r.suspended = false
	r.draw()
	return nil
}

// Suspend clears the area so prompts can use the terminal.
func (r *terminalRenderer) Suspend() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.area != nil {
		_ = r.area.Stop()
		r.area = nil
	}
	r.suspended = true
}

func (r *terminalRenderer) draw() {
	if r.suspended || r.area == nil {
		return
	}
	r.area.Update(renderClock(r.view, r.ok, r.flash))
}

// renderClock builds the whole live screen.
func renderClock(view poker.View, ok bool, flash bool) string {
	if !ok {
		return pterm.DefaultBox.WithTitle("Poker Time").Sprint("No rounds configured. Press [e] to edit or [i] to import.") +
			"\n" + pterm.FgGray.Sprint(keyHelp)
	}

	header := pterm.DefaultHeader.WithFullWidth().
		WithBackgroundStyle(pterm.NewStyle(pterm.BgBlack)).
		WithTextStyle(pterm.NewStyle(pterm.FgWhite, pterm.Bold)).
		Sprintf("Round: %d of %d", view.Round.Number, view.RoundCount)

	clockStyle := pterm.NewStyle(pterm.FgWhite)
	if flash {
		clockStyle = pterm.NewStyle(pterm.FgBlack, pterm.BgWhite)
	}
	clock, err := pterm.DefaultBigText.WithLetters(putils.LettersFromStringWithStyle(view.Clock, clockStyle)).Srender()
	if err != nil {
		clock = clockStyle.Sprint(view.Clock)
	}

	blinds := pterm.DefaultPanel.WithPanels(pterm.Panels{{
		getBlindPanel("Small Blind", view.Round.SmallBlind, pterm.FgWhite),
		getBlindPanel("Big Blind", view.Round.BigBlind, pterm.FgLightRed),
	}})
	blindText, err := blinds.Srender()
	if err != nil {
		blindText = ""
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(clock)
	b.WriteString("\n")
	b.WriteString(statusLine(view))
	b.WriteString("\n\n")
	b.WriteString(blindText)
	b.WriteString("\n")
	b.WriteString(nextLine(view))
	b.WriteString("\n")
	b.WriteString(pterm.FgGray.Sprint(keyHelp))
	return b.String()
}

func getBlindPanel(title string, amount uint, color pterm.Color) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprint(color.Sprint(formatChips(amount)))}
}

func statusLine(view poker.View) string {
	var status string
	switch view.Status {
	case poker.Running:
		status = pterm.LightGreen(view.Status.String())
	case poker.Paused:
		status = pterm.LightYellow(view.Status.String())
	case poker.Expired:
		status = pterm.LightRed(view.Status.String())
	default:
		status = pterm.Gray(view.Status.String())
	}
	return pterm.Sprintf("%s  [space] %s", status, view.Label)
}

func nextLine(view poker.View) string {
	if !view.HasNext {
		return pterm.Gray("Final round")
	}
	return pterm.Sprintf("Next: round %d, %d min, %s / %s",
		view.Next.Number, view.Next.Minutes, formatChips(view.Next.SmallBlind), formatChips(view.Next.BigBlind))
}

// overviewTable lists every round, marking the active one.
func overviewTable(rounds poker.Sequence, active int) pterm.TableData {
	data := pterm.TableData{{"Round", "Time", "Small Blind", "Big Blind"}}
	for i, r := range rounds {
		number := strconv.FormatUint(uint64(r.Number), 10)
		if i == active {
			number = "> " + number
		}
		data = append(data, []string{
			number,
			strconv.FormatUint(uint64(r.Minutes), 10),
			formatChips(r.SmallBlind),
			formatChips(r.BigBlind),
		})
	}
	return data
}

func printOverview(rounds poker.Sequence, active int) error {
	if len(rounds) == 0 {
		pterm.Info.Println("No rounds configured.")
		return nil
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(overviewTable(rounds, active)).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("%d rounds, %d minutes scheduled", len(rounds), rounds.TotalMinutes())
	return nil
}
