// Package splitter provides the delimiter-mode tokenizers that turn raw
// list text into token slices.
package splitter

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/baditaflorin/go_list_compare/internal/ports"
)

// Mode selects how raw text is tokenized.
type Mode string

const (
	// ModeAuto splits on newlines and falls back to commas when the text
	// holds at most one line.
	ModeAuto Mode = "auto"
	// ModeNewline splits on line breaks.
	ModeNewline Mode = "newline"
	// ModeComma splits on commas.
	ModeComma Mode = "comma"
	// ModeSemicolon splits on semicolons.
	ModeSemicolon Mode = "semicolon"
	// ModeWhitespace splits on runs of whitespace.
	ModeWhitespace Mode = "whitespace"
	// ModeCustom splits on a caller-supplied literal delimiter.
	ModeCustom Mode = "custom"
)

// ErrEmptyCustomDelimiter is returned when ModeCustom is requested without
// a delimiter string.
var ErrEmptyCustomDelimiter = errors.New("custom delimiter must not be empty")

// ParseMode converts a mode name into a Mode.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case ModeAuto:
		return ModeAuto, nil
	case ModeNewline:
		return ModeNewline, nil
	case ModeComma:
		return ModeComma, nil
	case ModeSemicolon:
		return ModeSemicolon, nil
	case ModeWhitespace:
		return ModeWhitespace, nil
	case ModeCustom:
		return ModeCustom, nil
	default:
		return "", errors.Errorf("unknown delimiter mode %q", name)
	}
}

// New creates a splitter for the given mode. ModeCustom requires a
// non-empty delimiter string.
func New(mode Mode, custom string) (ports.Splitter, error) {
	switch mode {
	case ModeNewline:
		return lineSplitter{}, nil
	case ModeComma:
		return delimiterSplitter{delim: ","}, nil
	case ModeSemicolon:
		return delimiterSplitter{delim: ";"}, nil
	case ModeWhitespace:
		return whitespaceSplitter{}, nil
	case ModeCustom:
		if custom == "" {
			return nil, ErrEmptyCustomDelimiter
		}
		return delimiterSplitter{delim: custom}, nil
	case ModeAuto, "":
		return autoSplitter{}, nil
	default:
		return nil, errors.Errorf("unknown delimiter mode %q", mode)
	}
}

// delimiterSplitter splits on a literal delimiter string.
type delimiterSplitter struct {
	delim string
}

func (s delimiterSplitter) Split(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, s.delim)
}

// lineSplitter splits on line breaks, tolerating CRLF and lone CR endings.
type lineSplitter struct{}

func (lineSplitter) Split(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// whitespaceSplitter splits on runs of Unicode whitespace.
type whitespaceSplitter struct{}

func (whitespaceSplitter) Split(text string) []string {
	return strings.Fields(text)
}

// autoSplitter tries newlines first, then commas when the text looks like
// a single line.
type autoSplitter struct{}

func (autoSplitter) Split(text string) []string {
	parts := lineSplitter{}.Split(text)
	if len(parts) <= 1 {
		return delimiterSplitter{delim: ","}.Split(text)
	}
	return parts
}
