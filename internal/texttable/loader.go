// Package texttable loads localization text tables from their XML form into
// a lookup from one language's text to another's.
//
// A text table is a sequence of TextTableEntry elements, each holding the same
// text in several languages plus an optional File element naming the device
// description it belongs to:
//
//	<TextTableEntry>
//	  <DEU>Vorlauftemperatur</DEU>
//	  <ENU>Flow temperature</ENU>
//	  <File>wtc/params.xml</File>
//	</TextTableEntry>
package texttable

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ism7tools/ism7text/internal/language"
)

var (
	// ErrEmptyResult is returned by Load when no entry survived parsing and filtering.
	ErrEmptyResult = errors.New("no localization entry has been loaded")
	// ErrClosed is returned by Load once the loader has been closed.
	ErrClosed = errors.New("text table loader is closed")
)

const (
	entryElement = "TextTableEntry"
	fileElement  = "File"
)

// Loader reads one text table source. It is not safe for concurrent use.
type Loader struct {
	source io.Reader
	cursor *cursor
	closed bool

	targetLanguage   language.Code
	originalLanguage language.Code
	includeFile      *string

	entries map[string]string
	loaded  bool
}

// NewLoader returns a Loader reading from r and translating into target.
// r is not read until Load is called. On success the loader owns r and closes
// it on Close when r is an io.Closer.
func NewLoader(r io.Reader, target string) (*Loader, error) {
	l := &Loader{
		source:           r,
		cursor:           newCursor(r),
		originalLanguage: language.German,
		entries:          make(map[string]string),
	}
	if err := l.SetTargetLanguage(target); err != nil {
		return nil, fmt.Errorf("create text table loader: %w", err)
	}
	return l, nil
}

// Open opens the text table file at path and returns a Loader over it.
func Open(path string, target string) (*Loader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open text table: %w", err)
	}
	l, err := NewLoader(file, target)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return l, nil
}

func (l *Loader) TargetLanguage() language.Code {
	return l.targetLanguage
}

// SetTargetLanguage changes the language used for dictionary values.
// An invalid code is rejected and the previous value kept.
func (l *Loader) SetTargetLanguage(s string) error {
	c, err := language.Parse(s)
	if err != nil {
		return err
	}
	l.targetLanguage = c
	return nil
}

func (l *Loader) OriginalLanguage() language.Code {
	return l.originalLanguage
}

// SetOriginalLanguage changes the language used for dictionary keys.
// An invalid code is rejected and the previous value kept.
func (l *Loader) SetOriginalLanguage(s string) error {
	c, err := language.Parse(s)
	if err != nil {
		return err
	}
	l.originalLanguage = c
	return nil
}

// IncludeFile returns the configured file filter and whether one is set.
func (l *Loader) IncludeFile() (string, bool) {
	if l.includeFile == nil {
		return "", false
	}
	return *l.includeFile, true
}

// SetIncludeFile keeps only entries without a File element or whose File
// contains s. Matching is case-sensitive.
func (l *Loader) SetIncludeFile(s string) {
	l.includeFile = &s
}

// ClearIncludeFile disables file filtering.
func (l *Loader) ClearIncludeFile() {
	l.includeFile = nil
}

// Load scans the source and rebuilds the dictionary from every
// TextTableEntry it finds. The source is consumed: calling Load again on a
// reader that cannot be rewound finds no entries and returns ErrEmptyResult.
func (l *Loader) Load() error {
	l.loaded = false
	if l.closed {
		return fmt.Errorf("load text table: %w", ErrClosed)
	}
	if len(l.entries) > 0 {
		l.entries = make(map[string]string)
	}

	var total, incomplete, filtered int
	for {
		_, ok, err := l.cursor.readToFollowing(entryElement)
		if err != nil {
			return fmt.Errorf("load text table: %w", err)
		}
		if !ok {
			break
		}
		total++

		e, err := l.readEntry()
		if err != nil {
			return fmt.Errorf("load text table entry %d: %w", total, err)
		}
		switch {
		case !e.complete():
			incomplete++
			slog.Default().Debug("skip incomplete text table entry",
				slog.Int("entry", total),
				slog.Bool("hasOriginal", e.hasKey),
				slog.Bool("hasTarget", e.hasValue),
			)
		case !l.included(e):
			filtered++
			slog.Default().Debug("skip text table entry of another file",
				slog.Int("entry", total),
				slog.String("file", e.file),
			)
		default:
			l.entries[e.key] = e.value
		}
	}

	slog.Default().Debug("text table loaded",
		slog.String("originalLanguage", l.originalLanguage.String()),
		slog.String("targetLanguage", l.targetLanguage.String()),
		slog.Int("entries", total),
		slog.Int("incomplete", incomplete),
		slog.Int("filtered", filtered),
		slog.Int("loaded", len(l.entries)),
	)

	if err := l.Validate(); err != nil {
		return err
	}
	l.loaded = true
	return nil
}

// Validate fails with ErrEmptyResult when the dictionary holds no entry.
func (l *Loader) Validate() error {
	if len(l.entries) == 0 {
		return fmt.Errorf("%w for language %s", ErrEmptyResult, l.targetLanguage)
	}
	return nil
}

// Dictionary returns a read-only view of the loaded dictionary.
// The view is empty unless the last Load succeeded.
func (l *Loader) Dictionary() Dictionary {
	if !l.loaded {
		return Dictionary{}
	}
	return Dictionary{entries: l.entries}
}

// Close releases the source. It is safe to call more than once.
func (l *Loader) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if closer, ok := l.source.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close text table source: %w", err)
		}
	}
	return nil
}

type entry struct {
	key      string
	value    string
	file     string
	hasKey   bool
	hasValue bool
	hasFile  bool
}

func (e entry) complete() bool {
	return e.hasKey && e.hasValue
}

func (l *Loader) included(e entry) bool {
	if !e.hasFile || l.includeFile == nil {
		return true
	}
	return strings.Contains(e.file, *l.includeFile)
}

// readEntry reads the children of the TextTableEntry whose start tag was just consumed.
// A name repeated within one entry overwrites the earlier value.
func (l *Loader) readEntry() (entry, error) {
	var e entry
	for {
		child, ok, err := l.cursor.nextChild()
		if err != nil {
			return e, err
		}
		if !ok {
			return e, nil
		}

		var target *string
		switch child.Name.Local {
		case string(l.originalLanguage):
			target, e.hasKey = &e.key, true
		case string(l.targetLanguage):
			target, e.hasValue = &e.value, true
		case fileElement:
			target, e.hasFile = &e.file, true
		default:
			if err := l.cursor.skip(); err != nil {
				return e, err
			}
			continue
		}

		text, err := l.cursor.readText(child)
		if err != nil {
			return e, err
		}
		*target = text
	}
}
