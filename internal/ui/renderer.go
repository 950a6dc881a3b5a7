package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/aegean/internal/board"
	"github.com/samdwyer/aegean/internal/deck"
	"github.com/samdwyer/aegean/internal/economy"
	"github.com/samdwyer/aegean/internal/entity"
	"github.com/samdwyer/aegean/internal/game"
	"github.com/samdwyer/aegean/internal/gamedata"
	"github.com/samdwyer/aegean/internal/weather"
)

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHeader  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGold    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	now    func() time.Time
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, now: time.Now}
}

// Render draws a complete snapshot of the game with the key help for its
// phase on the last line.
func (r *Renderer) Render(s game.State, help string) {
	r.screen.Clear()

	y := r.renderHeader(s, 0)
	y = r.renderNodes(s, y+1)
	y = r.renderPlayers(s, y+1)
	y = r.renderTurn(s, y+1)
	if s.DrawnCard != nil {
		y = r.renderCard(*s.DrawnCard, y+1)
	}
	if s.Result != nil {
		y = r.renderResult(s, y+1)
	}

	r.drawText(0, y+1, styleGold, s.Message)
	r.drawText(0, y+2, styleDim, help)

	r.screen.Show()
}

// renderHeader draws the title bar and returns the next free row.
func (r *Renderer) renderHeader(s game.State, y int) int {
	x := r.drawText(0, y, styleHeader, "AEGEAN TYCOON")
	x = r.drawText(x, y, styleDim, "  |  ")
	x = r.drawText(x, y, styleDefault, game.FormatDay(s.Day, s.MaxDays))
	x = r.drawText(x, y, styleDim, "  |  ")
	x = r.drawText(x, y, weatherStyle(s.Weather), s.Weather.String())
	x = r.drawText(x, y, styleDim, "  |  ")
	r.drawText(x, y, styleDefault, s.Phase.String())
	return y + 1
}

// renderNodes draws one row per island with its price, rent, level, owner
// and the ferries docked there or heading there.
func (r *Renderer) renderNodes(s game.State, y int) int {
	r.drawText(0, y, styleHeader, "ISLANDS")
	y++

	for _, n := range s.Nodes {
		x := r.drawText(0, y, nodeStyle(n), fmt.Sprintf("%c %-14s", nodeMarker(n.Kind), n.Name))
		if n.Kind == board.KindProperty {
			x = r.drawText(x, y, styleDefault, fmt.Sprintf("%8s  rent %-6s L%d ",
				game.FormatMoney(n.Price), game.FormatMoney(economy.Rent(n)), n.Level))
		} else {
			x = r.drawText(x, y, styleDim, fmt.Sprintf("%-27s", strings.ToLower(n.Kind.String())))
		}

		if owner, ok := s.Player(n.Owner); ok {
			x = r.drawText(x, y, avatarStyle(owner), fmt.Sprintf("%-10s", owner.Name))
		} else {
			x = r.drawText(x, y, styleDim, fmt.Sprintf("%-10s", "-"))
		}

		for _, p := range s.Players {
			switch {
			case p.InTransit() && p.Destination == n.ID:
				x = r.drawText(x, y, avatarStyle(p), ">")
			case !p.InTransit() && p.Position == n.ID:
				x = r.drawText(x, y, avatarStyle(p), "@")
			}
		}
		y++
	}
	return y
}

// renderPlayers draws one row per player.
func (r *Renderer) renderPlayers(s game.State, y int) int {
	r.drawText(0, y, styleHeader, "PLAYERS")
	y++

	for i, p := range s.Players {
		marker := "  "
		if i == s.TurnIndex && s.Phase != game.PhaseLobby {
			marker = "> "
		}
		x := r.drawText(0, y, styleGold, marker)
		x = r.drawText(x, y, avatarStyle(p), fmt.Sprintf("%-12s", p.Name))
		money := styleDefault
		if p.Money < 0 {
			money = styleBad
		}
		x = r.drawText(x, y, money, fmt.Sprintf("%9s", game.FormatMoney(p.Money)))
		x = r.drawText(x, y, styleDim, fmt.Sprintf("  %-10s %3d tourists  %d islands  ", p.Ferry, p.Tourists, len(p.Owned)))
		x = r.drawText(x, y, styleDefault, locationLabel(s, p))
		if p.Jailed {
			r.drawText(x+1, y, styleBad, "["+p.JailReason.String()+"]")
		}
		y++
	}
	return y
}

// renderTurn draws the die, the step budget, route choices and the
// progress of a running timer.
func (r *Renderer) renderTurn(s game.State, y int) int {
	if s.Phase == game.PhaseLobby {
		return y
	}

	die := "-"
	if s.DiceValue > 0 {
		die = fmt.Sprintf("%d", s.DiceValue)
	}
	if s.Rolling {
		die = "?"
	}
	x := r.drawText(0, y, styleDefault, fmt.Sprintf("Die: %s   Steps left: %d", die, s.RemainingSteps))

	if s.Pending != nil {
		x = r.drawText(x, y, styleDim, "   "+s.Pending.Kind.String()+" ")
		r.drawText(x, y, styleGood, progressBar(s.Pending, r.now(), 12))
	}
	y++

	if s.Phase == game.PhaseChoosingPath {
		x = r.drawText(0, y, styleDefault, "Routes:")
		for i, id := range s.ValidBranches {
			name := id
			if n, ok := s.Node(id); ok {
				name = n.Name
			}
			x = r.drawText(x, y, styleGold, fmt.Sprintf("  %d) %s", i+1, name))
		}
		y++
	}
	return y
}

// renderCard draws the drawn event card.
func (r *Renderer) renderCard(card deck.Card, y int) int {
	style := styleDefault
	switch card.Tone {
	case deck.ToneGood:
		style = styleGood
	case deck.ToneBad:
		style = styleBad
	}
	r.drawText(0, y, style.Bold(true), fmt.Sprintf("[%s] %s", card.Tone, card.Title))
	y++

	width, _ := r.screen.Size()
	for _, line := range wrap(card.Description, max(width-2, 20)) {
		r.drawText(2, y, styleDefault, line)
		y++
	}
	return y
}

// renderResult draws the final standings line.
func (r *Renderer) renderResult(s game.State, y int) int {
	winner, ok := s.Player(s.Result.WinnerID)
	if !ok {
		return y
	}
	text := fmt.Sprintf("Winner: %s with %s (%s)", winner.Name, game.FormatMoney(winner.Money), s.Result.Reason)
	r.drawText(0, y, styleGold, text)
	return y + 1
}

// drawText writes text from x and returns the column after it.
func (r *Renderer) drawText(x, y int, style tcell.Style, text string) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func locationLabel(s game.State, p entity.Player) string {
	name := func(id string) string {
		if n, ok := s.Node(id); ok {
			return n.Name
		}
		return id
	}
	if p.InTransit() {
		return name(p.Position) + " -> " + name(p.Destination)
	}
	return "@ " + name(p.Position)
}

func nodeMarker(k board.Kind) rune {
	switch k {
	case board.KindStart:
		return '*'
	case board.KindEvent:
		return '?'
	default:
		return '#'
	}
}

func nodeStyle(n board.Node) tcell.Style {
	switch n.Kind {
	case board.KindStart:
		return styleGold
	case board.KindEvent:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	default:
		return styleDefault
	}
}

func weatherStyle(m weather.Mode) tcell.Style {
	switch m {
	case weather.Gale:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	case weather.Heatwave:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	default:
		return styleGood
	}
}

func avatarStyle(p entity.Player) tcell.Style {
	return tcell.StyleDefault.Foreground(gamedata.AvatarColor(p.Avatar)).Bold(true)
}

// progressBar renders how far a timed transition has run.
func progressBar(p *game.Pending, now time.Time, width int) string {
	done := width
	if p.Duration > 0 {
		elapsed := now.Sub(p.StartedAt)
		done = int(float64(width) * float64(elapsed) / float64(p.Duration))
	}
	done = min(max(done, 0), width)
	return strings.Repeat("=", done) + strings.Repeat(".", width-done)
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
