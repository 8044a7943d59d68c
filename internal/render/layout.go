package render

import (
	"math"

	"git.lost.host/meutraa/notefall/internal/game"
)

// Layout maps playfield positions onto terminal cells, rows and columns start at 1
type Layout struct {
	Rows, Columns int
	Top, Bottom   int // First and last playfield rows
	Spacing       int
	Depth         float64
	Zone          game.Band
}

func NewLayout(columns, rows int, spacing uint, depth float64, zone game.Band) Layout {
	top := 3
	// Leave the last row for hit and miss flashes
	bottom := rows - 2
	if bottom <= top {
		bottom = top + 1
	}
	return Layout{
		Rows:    rows,
		Columns: columns,
		Top:     top,
		Bottom:  bottom,
		Spacing: int(spacing),
		Depth:   depth,
		Zone:    zone,
	}
}

func (l Layout) Column(lane game.Lane) int {
	mc := l.Columns >> 1
	return mc + (2*int(lane)-(game.NLanes-1))*l.Spacing
}

func (l Layout) Row(y float64) int {
	frac := math.Min(math.Max(y/l.Depth, 0), 1)
	return l.Top + int(math.Round(frac*float64(l.Bottom-l.Top)))
}

// Frac is how far down the playfield row is, between 0 and 1
func (l Layout) Frac(row int) float64 {
	return float64(row-l.Top) / float64(l.Bottom-l.Top)
}

// Left is the first column of the playfield background
func (l Layout) Left() int {
	left := l.Column(0) - l.Spacing
	if left < 1 {
		return 1
	}
	return left
}

func (l Layout) Width() int {
	return l.Column(game.NLanes-1) + l.Spacing - l.Left() + 1
}

func (l Layout) SideColumn() int {
	col := l.Left() - 24
	if col < 2 {
		return 2
	}
	return col
}

func (l Layout) JudgementRow() int {
	return l.Bottom + 1
}
