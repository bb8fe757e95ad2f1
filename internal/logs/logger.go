// Package logs builds the structured logger shared by the cfront commands.
package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects the sinks of a logger.
type Options struct {
	Level   slog.Level
	File    string // JSON records are appended here when set
	Journal bool   // also send records to the systemd journal
}

// ParseLevel maps a level name (debug, info, warn, error) to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// New returns a logger writing text records to w and, depending on opts, JSON
// records to a file and records to the journal. Every record carries a run
// attribute unique to this logger. The returned function releases the file.
func New(w io.Writer, opts Options) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	level.Set(opts.Level)

	terminal := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	handlers := []slog.Handler{terminal}

	closer := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}

	if opts.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			// no journal socket: keep going with the other sinks
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	logger := slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
		level:   level,
	})
	return logger.With("run", uuid.NewString()), closer, nil
}

// toJournalKey turns an attribute key into a valid journal field name.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
