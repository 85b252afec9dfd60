// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package logger implements a small ring-bounded event log for recording
// interpreter diagnostics (decode failures, host hook activity, reset
// conditions) without requiring a caller to thread a logging interface
// through every call site.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// stringify renders a log detail value. error and fmt.Stringer are handled
// explicitly so that the common case of logging a wrapped error doesn't
// require the caller to call .Error() themselves.
func stringify(detail any) string {
	switch v := detail.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Logger is a bounded, ring-like event log. The zero value is not usable;
// construct with NewLogger.
type Logger struct {
	maxEntries int
	entries    []Entry
	echo       io.Writer

	// timestamp of the most recent log event, used by callers that want to
	// detect whether new entries have arrived since they last looked
	atomicTimestamp atomic.Value // time.Time
}

// NewLogger creates a Logger that retains at most maxEntries entries,
// discarding the oldest entries once the limit is reached.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

// SetEcho causes every new log entry to also be written to w immediately.
// Passing nil disables echoing.
func (l *Logger) SetEcho(w io.Writer) {
	l.echo = w
}

// Log adds an entry to the log if perm allows it. detail is stringified
// using its Error() or String() method if it implements error or
// fmt.Stringer, otherwise with the %v verb. Consecutive identical entries
// are collapsed into a repeat count rather than growing the log.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.log(tag, stringify(detail))
}

// Logf is like Log but builds the detail string with a format pattern.
func (l *Logger) Logf(perm Permission, tag string, pattern string, args ...any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.log(tag, fmt.Sprintf(pattern, args...))
}

func (l *Logger) log(tag, detail string) {
	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if e == nil || detail != e.detail || tag != e.tag {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), tag: tag, detail: detail})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	l.atomicTimestamp.Store(e.Timestamp)

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Clear removes all entries from the log.
func (l *Logger) Clear() {
	l.entries = l.entries[:0]
}

// Write writes every retained entry to output. It returns false if the log
// was empty.
func (l *Logger) Write(output io.Writer) bool {
	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// Tail writes the most recent number entries to output.
func (l *Logger) Tail(output io.Writer, number int) {
	if number > len(l.entries) {
		number = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// Copy returns a snapshot of the retained entries if the log has changed
// since ref, or nil otherwise.
func (l *Logger) Copy(ref time.Time) []Entry {
	if ref != l.atomicTimestamp.Load().(time.Time) {
		c := make([]Entry, len(l.entries))
		copy(c, l.entries)
		return c
	}
	return nil
}

// Stdout is a convenience echo target.
var Stdout io.Writer = os.Stdout
