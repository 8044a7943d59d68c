package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"git.lost.host/meutraa/notefall/internal/config"
	"git.lost.host/meutraa/notefall/internal/game"
	"git.lost.host/meutraa/notefall/internal/input"
	"git.lost.host/meutraa/notefall/internal/render"
	"git.lost.host/meutraa/notefall/internal/session"
)

const (
	gainStep    = 0.1
	hitFrames   = 12
	missFrames  = 30
	gameOverMsg = "Game Over! Too many misses."
)

// TrackLoader opens the song at the given gain
type TrackLoader func(ctx context.Context, gain float64) (session.Track, error)

type Program struct {
	ctx     context.Context
	cfg     *config.Config
	session *session.Session
	painter *render.Painter
	source  input.Source
	latch   *input.Latch
	load    TrackLoader
	size    func() (int, int, error)

	track session.Track
	gain  float64
	quit  bool
}

func NewProgram(
	ctx context.Context,
	cfg *config.Config,
	s *session.Session,
	painter *render.Painter,
	source input.Source,
	load TrackLoader,
) *Program {
	return &Program{
		ctx:     ctx,
		cfg:     cfg,
		session: s,
		painter: painter,
		source:  source,
		latch:   input.NewLatch(cfg.Hold),
		load:    load,
		gain:    cfg.Volume,
	}
}

// Resize picks up terminal size changes, it reports whether the layout changed
func (p *Program) Resize() bool {
	if nil == p.size {
		return false
	}
	columns, rows, err := p.size()
	if nil != err {
		return false
	}
	l := p.painter.Layout()
	if columns == l.Columns && rows == l.Rows {
		return false
	}
	log.Println("resized to", columns, rows)
	p.painter.SetLayout(render.NewLayout(columns, rows, p.cfg.Spacing, p.cfg.Field.Depth, p.cfg.HitZone))
	return true
}

func (p *Program) Idle(lines ...string) {
	p.painter.SetLayout(p.painter.Layout())
	lines = append(lines, "", fmt.Sprintf("Lanes %v, Enter to start, q to quit", p.cfg.Keys))
	p.painter.Message(lines...)
}

func (p *Program) start() {
	if p.session.State() == game.Ended {
		p.session.Reset()
	}
	p.latch.Reset()

	err := p.session.Start(p.ctx, func(ctx context.Context) (session.Track, error) {
		track, err := p.load(ctx, p.gain)
		if nil != err {
			return nil, err
		}
		p.track = track
		return track, nil
	})
	if nil != err {
		log.Println(err)
		p.track = nil
		p.Idle(err.Error())
		return
	}
	p.painter.SetLayout(p.painter.Layout())
}

func (p *Program) setGain(gain float64) {
	p.gain = math.Round(math.Max(0, math.Min(1, gain))*10) / 10
	if g, ok := p.track.(interface{ SetGain(float64) }); ok {
		g.SetGain(p.gain)
	}
}

func (p *Program) handle(ev input.Event, now time.Time) {
	if nil != ev.Err {
		log.Println("unable to read keyboard", ev.Err)
		p.quit = true
		return
	}

	switch ev.Control {
	case input.Quit:
		p.quit = true
	case input.Start:
		if p.session.State() != game.Running {
			p.start()
		}
	case input.VolumeUp:
		p.setGain(p.gain + gainStep)
	case input.VolumeDown:
		p.setGain(p.gain - gainStep)
	case input.None:
		if p.source.Releases() {
			p.session.SetKeyState(ev.Lane, ev.Pressed)
		} else if ev.Pressed {
			p.latch.Press(ev.Lane, now)
			p.session.SetKeyState(ev.Lane, true)
		}
	}
}

// Input applies every key event that arrived since the last frame
func (p *Program) Input(now time.Time) {
	for {
		select {
		case ev, ok := <-p.source.Events():
			if !ok {
				log.Println("keyboard closed")
				p.quit = true
				return
			}
			p.handle(ev, now)
		default:
			if !p.source.Releases() {
				for _, lane := range p.latch.Expire(now) {
					p.session.SetKeyState(lane, false)
				}
			}
			return
		}
	}
}

func (p *Program) Update() {
	tick := p.session.Update()
	for _, note := range tick.Hits {
		p.painter.Judge(note, game.Hit, hitFrames)
	}
	for _, note := range tick.Misses {
		p.painter.Judge(note, game.Miss, missFrames)
	}

	if p.session.State() == game.Ended {
		p.GameOver(gameOverMsg)
		return
	}

	// Once the song is over there is nothing left to spawn notes
	if d, ok := p.track.(interface{ Done() bool }); ok && d.Done() && len(p.session.Frame().Notes) == 0 {
		p.session.Stop()
		p.GameOver("Song finished")
	}
}

func (p *Program) GameOver(title string) {
	log.Println(title, "score", p.session.Score(), "misses", p.session.Misses())
	p.painter.SetLayout(p.painter.Layout())
	p.painter.Message(
		title,
		fmt.Sprintf("Score: %v  Misses: %v", p.session.Score(), p.session.Misses()),
		"",
		"Enter to play again, q to quit",
	)
}

func (p *Program) Render() {
	p.session.Render(p.painter)
	p.painter.Status(fmt.Sprintf("Volume %3.0f%%", p.gain*100))
}

// Frame runs one tick of the game, it returns false once the player quits
func (p *Program) Frame(now time.Time) bool {
	if p.Resize() && p.session.State() != game.Running {
		p.Idle()
	}
	p.Input(now)
	if p.quit {
		return false
	}

	if p.session.State() == game.Running {
		p.Update()
		if p.session.State() == game.Running {
			p.Render()
		}
	}
	return true
}
