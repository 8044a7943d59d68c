package input

import (
	"encoding/binary"
	"errors"
	"io"
	"log"
	"os"
	"syscall"
	"unicode"

	"git.lost.host/meutraa/notefall/internal/game"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const (
	evKey = 0x01

	keyEsc      = 1
	keyMinus    = 12
	keyEqual    = 13
	keyEnter    = 28
	keyKPMinus  = 74
	keyKPPlus   = 78
	keyKPEnter  = 96
	valueUp     = 0
	valueDown   = 1
	valueRepeat = 2
)

var codes = map[rune]uint16{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6, '6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20, 'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'[': 26, ']': 27,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34, 'h': 35, 'j': 36, 'k': 37, 'l': 38, ';': 39, '\'': 40,
	'\\': 43,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48, 'n': 49, 'm': 50, ',': 51, '.': 52, '/': 53,
	' ': 57,
}

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Device reads a Linux evdev keyboard, which reports real key releases
type Device struct {
	file   *os.File
	events chan Event
}

// KeyCodes returns the evdev code of every lane key
func KeyCodes(keys string) (map[uint16]game.Lane, error) {
	lanes := map[uint16]game.Lane{}
	for i, r := range []rune(keys) {
		code, ok := codes[unicode.ToLower(r)]
		if !ok {
			return nil, errors.New("no evdev code for lane key " + string(r))
		}
		lanes[code] = game.Lane(i)
	}
	return lanes, nil
}

func OpenDevice(kbd string, keys string) (*Device, error) {
	lanes, err := KeyCodes(keys)
	if nil != err {
		return nil, err
	}
	file, err := os.Open(kbd)
	if nil != err {
		return nil, err
	}
	d := &Device{
		file:   file,
		events: make(chan Event, 128),
	}
	go func() {
		defer close(d.events)
		if err := readEvents(file, lanes, d.events); nil != err {
			log.Println(err, "unable to read keyboard input")
			d.events <- Event{Err: err}
		}
	}()
	return d, nil
}

func control(code uint16) Control {
	switch code {
	case keyEsc, codes['q']:
		return Quit
	case keyEnter, keyKPEnter:
		return Start
	case keyEqual, keyKPPlus:
		return VolumeUp
	case keyMinus, keyKPMinus:
		return VolumeDown
	}
	return None
}

func readEvents(r io.Reader, lanes map[uint16]game.Lane, events chan<- Event) error {
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return err
		}
		if ev.Type != evKey || ev.Value == valueRepeat {
			continue
		}

		if lane, ok := lanes[ev.Code]; ok {
			events <- Event{Lane: lane, Pressed: ev.Value == valueDown}
			continue
		}
		if c := control(ev.Code); c != None && ev.Value == valueDown {
			events <- Event{Control: c, Pressed: true}
		}
	}
}

func (d *Device) Events() <-chan Event {
	return d.events
}

func (d *Device) Releases() bool {
	return true
}

func (d *Device) Close() error {
	return d.file.Close()
}
