package audio

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

var (
	ErrUnsupported = errors.New("unsupported audio format")
	ErrNoAudio     = errors.New("unable to find an .mp3/.ogg/.wav file in given directory")
)

func Supported(file string) bool {
	switch strings.ToLower(path.Ext(file)) {
	case ".mp3", ".ogg", ".wav":
		return true
	}
	return false
}

// Find returns song itself, or the first audio file inside it when it is a directory
func Find(song string) (string, error) {
	info, err := os.Stat(song)
	if nil != err {
		return "", err
	}
	if !info.IsDir() {
		if !Supported(song) {
			return "", fmt.Errorf("%v: %w", song, ErrUnsupported)
		}
		return song, nil
	}

	var found string
	if err := filepath.Walk(song, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if found == "" && !info.IsDir() && Supported(info.Name()) {
			found = p
		}
		return nil
	}); nil != err {
		return "", fmt.Errorf("unable to walk song directory: %w", err)
	}
	if found == "" {
		return "", ErrNoAudio
	}
	return found, nil
}

func Decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(path.Ext(file)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%v: %w", file, ErrUnsupported)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	return streamer, format, nil
}
