// Package eventlog records session events as JSON lines.
package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/SeamusWaldron/cubestep"
)

const logVersion = "1.0"

// Entry is a single logged event.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	ElapsedMs int64     `json:"elapsed_ms"`
	EventType string    `json:"event_type"`
	Index     *int      `json:"index,omitempty"`
	Code      string    `json:"code,omitempty"`
	Moves     string    `json:"moves,omitempty"`
	Applied   *bool     `json:"applied,omitempty"`
	Cursor    *int      `json:"cursor,omitempty"`
	Facelets  string    `json:"facelets,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Log is a parsed log file.
type Log struct {
	Version   string
	CreatedAt time.Time
	Entries   []Entry
}

type header struct {
	Type      string    `json:"type"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// Logger appends events to a JSONL file. A nil or unstarted Logger
// ignores everything, so callers need not check whether logging is on.
type Logger struct {
	file      *os.File
	startTime time.Time
	err       error
	now       func() time.Time
}

// New creates a log file named session_<timestamp>.jsonl in dir.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	start := time.Now()
	name := fmt.Sprintf("session_%s.jsonl", start.Format("20060102_150405"))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	l := &Logger{file: file, startTime: start, now: time.Now}
	if err := l.writeJSON(header{Type: "header", Version: logVersion, CreatedAt: start}); err != nil {
		file.Close()
		return nil, err
	}
	return l, nil
}

// Observe records a session event. Use it with gocube.WithObserver.
// Write failures are kept and reported by Err.
func (l *Logger) Observe(e gocube.Event) {
	if l == nil || l.file == nil {
		return
	}
	if err := l.writeJSON(l.entry(e)); err != nil && l.err == nil {
		l.err = err
	}
}

func (l *Logger) entry(e gocube.Event) Entry {
	now := l.now()
	en := Entry{
		Timestamp: now,
		ElapsedMs: now.Sub(l.startTime).Milliseconds(),
		EventType: e.Type.String(),
		Facelets:  e.Facelets,
	}

	switch e.Type {
	case gocube.EventPaint:
		idx := e.Index
		en.Index = &idx
		en.Code = string(e.Code)
	case gocube.EventScramble:
		applied := e.Applied
		en.Applied = &applied
		en.Moves = gocube.FormatMoves(e.Moves)
	case gocube.EventSolve:
		en.Moves = gocube.FormatMoves(e.Moves)
	case gocube.EventSolveFailed:
		if e.Err != nil {
			en.Error = e.Err.Error()
		}
	case gocube.EventStep:
		cur := e.Cursor
		en.Cursor = &cur
	}
	return en
}

func (l *Logger) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = l.file.Write(append(data, '\n'))
	return err
}

// Err returns the first write error, if any.
func (l *Logger) Err() error {
	if l == nil {
		return nil
	}
	return l.err
}

// FilePath returns the current log file path.
func (l *Logger) FilePath() string {
	if l == nil || l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Load reads a log file written by Logger.
func Load(path string) (*Log, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	log := &Log{Entries: make([]Entry, 0)}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		// First line is the header
		if lineNum == 1 {
			var h header
			if err := json.Unmarshal(line, &h); err != nil {
				return nil, fmt.Errorf("failed to parse header: %w", err)
			}
			log.Version = h.Version
			log.CreatedAt = h.CreatedAt
			continue
		}

		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("failed to parse event at line %d: %w", lineNum, err)
		}
		log.Entries = append(log.Entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	return log, nil
}

// List returns the log file names in dir, oldest first.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			logs = append(logs, e.Name())
		}
	}
	// Names embed the timestamp.
	sort.Strings(logs)
	return logs, nil
}
