package input

import (
	"github.com/eiannone/keyboard"
)

// Keyboard reads keys from the terminal. Terminals only report presses,
// so lane events from it are always Pressed and need a Latch.
type Keyboard struct {
	events chan Event
	done   chan struct{}
}

func OpenKeyboard(lanes Lanes) (*Keyboard, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}
	k := &Keyboard{
		events: make(chan Event, 128),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-k.done:
				return
			case key, ok := <-keys:
				if !ok {
					return
				}
				ev, ok := translate(key, lanes)
				if !ok {
					continue
				}
				select {
				case k.events <- ev:
				case <-k.done:
					return
				}
			}
		}
	}()
	return k, nil
}

func translate(key keyboard.KeyEvent, lanes Lanes) (Event, bool) {
	if nil != key.Err {
		return Event{Err: key.Err}, true
	}
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Control: Quit, Pressed: true}, true
	case keyboard.KeyEnter:
		return Event{Control: Start, Pressed: true}, true
	case keyboard.KeySpace:
		key.Rune = ' '
	}

	if lane, ok := lanes(key.Rune); ok {
		return Event{Lane: lane, Pressed: true}, true
	}
	switch key.Rune {
	case 'q', 'Q':
		return Event{Control: Quit, Pressed: true}, true
	case '+', '=':
		return Event{Control: VolumeUp, Pressed: true}, true
	case '-', '_':
		return Event{Control: VolumeDown, Pressed: true}, true
	}
	return Event{}, false
}

func (k *Keyboard) Events() <-chan Event {
	return k.events
}

func (k *Keyboard) Releases() bool {
	return false
}

func (k *Keyboard) Close() error {
	close(k.done)
	return keyboard.Close()
}
