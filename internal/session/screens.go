package session

import (
	"fmt"

	"github.com/qbakra/escape-arcade/internal/core"
)

const (
	buttonW = 24
	buttonH = 3
)

// escapeButton is the hit area of the "Escape!" button on the title screen.
func (s *Session) escapeButton() core.Rect {
	x := float64(s.cfg.ScreenW-buttonW) / 2
	y := float64(s.cfg.ScreenH) / 2
	return core.NewRect(x, y, buttonW, buttonH)
}

// sufferButton sits directly under the escape button.
func (s *Session) sufferButton() core.Rect {
	b := s.escapeButton()
	return core.NewRect(b.X, b.Y+buttonH+1, buttonW, buttonH)
}

// readyButton is the hit area of the "Ready!" button on the transition screen.
func (s *Session) readyButton() core.Rect {
	x := float64(s.cfg.ScreenW-buttonW) / 2
	y := float64(s.cfg.ScreenH) - buttonH - 2
	return core.NewRect(x, y, buttonW, buttonH)
}

func (s *Session) drawButton(dst *core.Screen, r core.Rect, label string, c core.Color) {
	x, y := int(r.X), int(r.Y)
	dst.DrawBox(x, y, int(r.W), int(r.H), c)
	lx := x + (int(r.W)-len(label))/2
	dst.DrawTextColored(lx, y+int(r.H)/2, label, c)
}

func (s *Session) renderTitle(dst *core.Screen) {
	dst.DrawTextCentered(s.cfg.ScreenH/4, "ESCAPE ROOM", core.ColorGold)
	dst.DrawTextCentered(s.cfg.ScreenH/4+2, "Four trials stand between you and freedom", core.ColorWhite)

	s.drawButton(dst, s.escapeButton(), "Escape!", core.ColorGreen)
	s.drawButton(dst, s.sufferButton(), "Suffer", core.ColorRed)

	if s.sufferVisible {
		y := int(s.sufferButton().Bottom()) + 2
		dst.DrawTextCentered(y, "Suit yourself. The door was open the whole time.", core.ColorRed)
	}
}

func (s *Session) renderTransition(dst *core.Screen) {
	dst.DrawTextCentered(s.cfg.ScreenH/5, "NEXT UP", core.ColorWhite)
	dst.DrawTextCentered(s.cfg.ScreenH/5+2, s.nextName, core.ColorGold)

	y := s.cfg.ScreenH/5 + 5
	for i, line := range s.nextInstructions {
		dst.DrawTextCentered(y+i, line, core.ColorCyan)
	}

	s.drawButton(dst, s.readyButton(), "Ready!", core.ColorGreen)
	dst.DrawTextCentered(int(s.readyButton().Y)-2, "press enter or click when ready", core.ColorGray)
}

func (s *Session) renderGameOver(dst *core.Screen) {
	dst.DrawTextCentered(s.cfg.ScreenH/2-2, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(s.cfg.ScreenH/2, "The room keeps you a little longer.", core.ColorWhite)
	dst.DrawTextCentered(s.cfg.ScreenH/2+2, "press enter to return to the title", core.ColorGray)
}

func (s *Session) renderGameWon(dst *core.Screen) {
	dst.DrawTextCentered(s.cfg.ScreenH/2-2, "YOU ESCAPED!", core.ColorGold)
	dst.DrawTextCentered(s.cfg.ScreenH/2, "Every trial cleared. Freedom at last.", core.ColorWhite)
	dst.DrawTextCentered(s.cfg.ScreenH/2+2, "press enter to return to the title", core.ColorGray)
}

// StatusLine is a one-line summary of the current session state, shown by
// the platform below the playfield.
func (s *Session) StatusLine() string {
	switch s.state {
	case StateTitle:
		return "title screen"
	case StatePlaying:
		name := ""
		if s.active != nil {
			name = s.active.Name()
		}
		return fmt.Sprintf("playing: %s (%d left after this)", name, s.Remaining())
	case StateTransition:
		return fmt.Sprintf("loading %s", s.nextName)
	case StateGameOver:
		return "game over"
	case StateGameWon:
		return "victory"
	default:
		return ""
	}
}
