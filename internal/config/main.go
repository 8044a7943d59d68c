package config

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"git.lost.host/meutraa/notefall/internal/field"
	"git.lost.host/meutraa/notefall/internal/game"
	"git.lost.host/meutraa/notefall/internal/session"
	"gopkg.in/alecthomas/kingpin.v2"
)

const version = "0.3.0"

type Config struct {
	Song        string // Audio file, or a directory containing one
	Volume      float64
	Field       field.Settings
	Session     session.Settings
	HitZone     game.Band
	Keys        string        // One key per lane, left to right
	Hold        time.Duration // How long a press counts as held without a release event
	Device      string        // evdev keyboard device, empty to read the terminal
	Spacing     uint          // Columns between lanes
	FramePeriod time.Duration
	Seed        int64
	LogFile     string
}

func Default() *Config {
	return &Config{
		Volume:      0.3,
		Field:       field.DefaultSettings(),
		Session:     session.DefaultSettings(),
		HitZone:     game.Band{Low: 550, High: 600},
		Keys:        "asdf",
		Hold:        150 * time.Millisecond,
		Spacing:     6,
		FramePeriod: 16 * time.Millisecond,
	}
}

func newApp(c *Config) *kingpin.Application {
	app := kingpin.New("notefall", "Falling note rhythm game for the terminal")
	app.Version(version)

	app.Arg("song", "Song file or directory").Required().ExistingFileOrDirVar(&c.Song)
	app.Flag("volume", "Music gain between 0 and 1").Default("0.3").Short('v').Float64Var(&c.Volume)
	app.Flag("interval", "Time between cadence notes").Default("650ms").Short('i').DurationVar(&c.Field.Interval)
	app.Flag("speed", "Fall distance per frame").Default("5").Short('s').Float64Var(&c.Field.Speed)
	app.Flag("high", "Energy that spawns a beat note").Default("0.3").Float64Var(&c.Field.High)
	app.Flag("low", "Energy that rearms the beat trigger").Default("0.2").Float64Var(&c.Field.Low)
	app.Flag("bounce", "Emphasis time of beat notes").Default("100ms").DurationVar(&c.Field.Bounce)
	app.Flag("bounce-scale", "Emphasis scale of beat notes").Default("1.5").Float64Var(&c.Field.BounceScale)
	app.Flag("depth", "Playfield depth").Default("600").Float64Var(&c.Field.Depth)
	app.Flag("hit-low", "Top of the hit zone").Default("550").Float64Var(&c.HitZone.Low)
	app.Flag("hit-high", "Bottom of the hit zone").Default("600").Float64Var(&c.HitZone.High)
	app.Flag("reward", "Points per hit").Default("10").IntVar(&c.Session.Reward)
	app.Flag("miss-limit", "Misses that end the game").Default("15").Short('m').IntVar(&c.Session.MissLimit)
	app.Flag("keys", "Lane keys, left to right").Default("asdf").Short('k').StringVar(&c.Keys)
	app.Flag("hold", "How long a key press is held on terminals without release events").Default("150ms").DurationVar(&c.Hold)
	app.Flag("device", "evdev keyboard device, e.g. /dev/input/event3").Short('D').StringVar(&c.Device)
	app.Flag("spacing", "Columns between lanes").Default("6").Short('S').UintVar(&c.Spacing)
	app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("seed", "Lane random seed, 0 for the current time").Default("0").Int64Var(&c.Seed)
	app.Flag("log", "Log file").StringVar(&c.LogFile)
	return app
}

func Parse(args []string) (*Config, error) {
	c := Default()
	if _, err := newApp(c).Parse(args); nil != err {
		return nil, err
	}
	if err := c.Validate(); nil != err {
		return nil, err
	}
	return c, nil
}

var ErrInvalid = errors.New("invalid configuration")

func invalid(format string, v ...interface{}) error {
	return fmt.Errorf("%w: %v", ErrInvalid, fmt.Sprintf(format, v...))
}

func (c *Config) Validate() error {
	switch {
	case c.Volume < 0 || c.Volume > 1:
		return invalid("volume %v is outside [0, 1]", c.Volume)
	case c.Field.Interval <= 0:
		return invalid("interval must be positive")
	case c.Field.Speed <= 0:
		return invalid("speed must be positive")
	case c.Field.Low > c.Field.High:
		return invalid("low threshold %v is above high threshold %v", c.Field.Low, c.Field.High)
	case c.Field.Depth <= 0:
		return invalid("depth must be positive")
	case c.HitZone.Low > c.HitZone.High:
		return invalid("hit zone [%v, %v] is empty", c.HitZone.Low, c.HitZone.High)
	case c.HitZone.Low < 0 || c.HitZone.High > c.Field.Depth:
		return invalid("hit zone [%v, %v] is outside the playfield", c.HitZone.Low, c.HitZone.High)
	case c.Session.Reward < 0:
		return invalid("reward must not be negative")
	case c.Session.MissLimit <= 0:
		return invalid("miss limit must be positive")
	case len([]rune(c.Keys)) != game.NLanes:
		return invalid("need %v lane keys, got %q", game.NLanes, c.Keys)
	case c.FramePeriod <= 0:
		return invalid("frame period must be positive")
	}

	seen := map[rune]bool{}
	for _, r := range c.Keys {
		r = unicode.ToLower(r)
		if seen[r] {
			return invalid("lane key %q is used twice", r)
		}
		seen[r] = true
	}
	return nil
}

// KeyLane returns the lane bound to a key, ignoring case
func (c *Config) KeyLane(r rune) (game.Lane, bool) {
	r = unicode.ToLower(r)
	for i, k := range []rune(c.Keys) {
		if unicode.ToLower(k) == r {
			return game.Lane(i), true
		}
	}
	return 0, false
}
