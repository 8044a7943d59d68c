package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.lost.host/meutraa/notefall/internal/audio"
	"git.lost.host/meutraa/notefall/internal/config"
	"git.lost.host/meutraa/notefall/internal/field"
	"git.lost.host/meutraa/notefall/internal/input"
	"git.lost.host/meutraa/notefall/internal/render"
	"git.lost.host/meutraa/notefall/internal/score"
	"git.lost.host/meutraa/notefall/internal/session"
	"git.lost.host/meutraa/notefall/internal/theme"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}

func openLog(file string) (func(), error) {
	if file == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func openInput(cfg *config.Config) (input.Source, error) {
	if cfg.Device != "" {
		return input.OpenDevice(cfg.Device, cfg.Keys)
	}
	return input.OpenKeyboard(cfg.KeyLane)
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	closeLog, err := openLog(cfg.LogFile)
	if nil != err {
		return err
	}
	defer closeLog()

	song, err := audio.Find(cfg.Song)
	if nil != err {
		return err
	}

	fd := int(os.Stdout.Fd())
	columns, rows, err := term.GetSize(fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Println("lane seed", seed)

	s := session.New(
		cfg.Session,
		field.New(cfg.Field, rand.New(rand.NewSource(seed))),
		score.New(cfg.HitZone),
	)
	defer s.Reset()

	source, err := openInput(cfg)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := source.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	// Clear the screen and hide the cursor
	r := render.NewRenderer(os.Stdout, fd)
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		r.Deinit()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	painter := render.NewPainter(r, &theme.DefaultTheme{},
		render.NewLayout(columns, rows, cfg.Spacing, cfg.Field.Depth, cfg.HitZone))
	p := NewProgram(ctx, cfg, s, painter, source, func(ctx context.Context, gain float64) (session.Track, error) {
		log.Printf("Opening %v\n", song)
		track, err := audio.Open(song, gain)
		if nil != err {
			return nil, err
		}
		return track, nil
	})
	p.size = func() (int, int, error) {
		return term.GetSize(fd)
	}
	p.Idle(song)

	err = r.RenderLoop(ctx, cfg.FramePeriod, p.Frame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
