package render

import (
	"fmt"
	"image/color"
	"time"

	"git.lost.host/meutraa/notefall/internal/game"
	"git.lost.host/meutraa/notefall/internal/theme"
)

var statusColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}

// Painter draws session frames onto a terminal renderer
type Painter struct {
	r      Renderer
	th     theme.Theme
	layout Layout
}

func NewPainter(r Renderer, th theme.Theme, layout Layout) *Painter {
	return &Painter{r: r, th: th, layout: layout}
}

func (p *Painter) Layout() Layout {
	return p.layout
}

func (p *Painter) SetLayout(layout Layout) {
	p.layout = layout
	p.r.Clear()
}

// Clock formats elapsed playback time as m:ss
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func (p *Painter) Draw(f game.Frame) {
	l := p.layout
	left, width := l.Left(), l.Width()
	lo, hi := l.Row(l.Zone.Low), l.Row(l.Zone.High)

	// Background, lanes and the hit zone, repainted each frame to clear old notes
	for row := l.Top; row <= l.Bottom; row++ {
		bg := p.th.Background(f.Energy, f.EnergyOK, l.Frac(row))
		p.r.Fill(row, left, p.th.RenderBlank(width, bg))
		for lane := game.Lane(0); lane < game.NLanes; lane++ {
			if row >= lo && row <= hi {
				p.r.Fill(row, l.Column(lane), p.th.RenderHitField(lane, f.Keys.Pressed(lane), bg))
			} else {
				p.r.Fill(row, l.Column(lane), p.th.RenderLane(bg))
			}
		}
	}

	for _, note := range f.Notes {
		row := l.Row(note.Y)
		bg := p.th.Background(f.Energy, f.EnergyOK, l.Frac(row))
		p.r.Fill(row, l.Column(note.Lane), p.th.RenderNote(note.Lane, note.Emphasized(), bg))
	}

	side := l.SideColumn()
	p.r.Fill(l.Top, side, fmt.Sprintf("      Score:  %6v", f.Score))
	p.r.Fill(l.Top+1, side, fmt.Sprintf("     Misses:  %6v", f.Misses))
	p.r.Fill(l.Top+2, side, fmt.Sprintf("       Time:  %6v", Clock(f.Elapsed)))
}

// Judge flashes the outcome of a note below its lane
func (p *Painter) Judge(note *game.Note, j game.Judgement, frames int) {
	p.r.AddDecoration(p.layout.Column(note.Lane), p.layout.JudgementRow(), p.th.RenderJudgement(j), frames)
}

// Message draws lines centred on the screen
func (p *Painter) Message(lines ...string) {
	l := p.layout
	row := l.Rows/2 - len(lines)/2
	for i, line := range lines {
		col := (l.Columns-len([]rune(line)))/2 + 1
		if col < 1 {
			col = 1
		}
		p.r.Fill(row+i, col, line)
	}
}

// Status writes a single line at the top left of the screen
func (p *Painter) Status(line string) {
	p.r.FillColor(1, 1, statusColor, "\033[2K"+line)
}
