package theme

import (
	"fmt"
	"math"
	"strings"

	"git.lost.host/meutraa/notefall/internal/game"
	"github.com/lucasb-eyer/go-colorful"
)

type DefaultTheme struct {
}

const (
	laneSym    = "│"
	noteSym    = "●"
	beatSym    = "⬤"
	hitSym     = "◯"
	pressedSym = "◉"
	missSym    = "✗"
)

var (
	noteColor    = colorful.Color{R: 0, G: 0, B: 1}       // blue
	beatColor    = colorful.Color{R: 0.4, G: 0.6, B: 1}   // light blue
	laneColor    = colorful.Color{R: 1, G: 1, B: 1}       // white
	hitColor     = colorful.Color{R: 0.5, G: 0.5, B: 0.5} // grey
	pressedColor = colorful.Color{R: 0, G: 0.4, B: 1}
	black        = colorful.Color{}
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Intensity maps an energy reading onto a colour channel
func Intensity(energy float64) uint8 {
	return uint8(math.Min(math.Max(math.Floor(energy*255), 0), 255))
}

func (t *DefaultTheme) Background(energy float64, ok bool, frac float64) colorful.Color {
	if !ok || math.IsNaN(energy) {
		return black
	}
	i := Intensity(energy)
	top := rgb(i, 50, 150)
	bottom := rgb(30, i, 160)
	return top.BlendRgb(bottom, math.Min(math.Max(frac, 0), 1))
}

func escape(fg, bg colorful.Color, s string) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\033[38;2;%v;%v;%vm\033[48;2;%v;%v;%vm%v\033[0m", r1, g1, b1, r2, g2, b2, s)
}

func (t *DefaultTheme) RenderBlank(width int, bg colorful.Color) string {
	if width <= 0 {
		return ""
	}
	return escape(laneColor, bg, strings.Repeat(" ", width))
}

func (t *DefaultTheme) RenderLane(bg colorful.Color) string {
	return escape(laneColor, bg, laneSym)
}

func (t *DefaultTheme) RenderNote(lane game.Lane, emphasized bool, bg colorful.Color) string {
	if emphasized {
		return escape(beatColor, bg, beatSym)
	}
	return escape(noteColor, bg, noteSym)
}

func (t *DefaultTheme) RenderHitField(lane game.Lane, pressed bool, bg colorful.Color) string {
	if pressed {
		return escape(pressedColor, bg, pressedSym)
	}
	return escape(hitColor, bg, hitSym)
}

func (t *DefaultTheme) RenderJudgement(j game.Judgement) string {
	switch j {
	case game.Hit:
		return "\033[1;32m+\033[0m"
	case game.Miss:
		return "\033[1;31m" + missSym + "\033[0m"
	}
	return " "
}
