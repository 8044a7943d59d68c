package theme

import (
	"git.lost.host/meutraa/notefall/internal/game"
	"github.com/lucasb-eyer/go-colorful"
)

type Theme interface {
	// Background colour of a playfield row, frac runs from 0 at the top to 1 at the bottom
	Background(energy float64, ok bool, frac float64) colorful.Color

	RenderBlank(width int, bg colorful.Color) string
	RenderLane(bg colorful.Color) string
	RenderNote(lane game.Lane, emphasized bool, bg colorful.Color) string
	RenderHitField(lane game.Lane, pressed bool, bg colorful.Color) string
	RenderJudgement(j game.Judgement) string
}
