package helper

import (
	"fmt"
	"strings"
	"sync"
)

// LoggerSpy is a lazyload.Logger implementation that captures log calls for
// testing.
type LoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// SpyLogRecord represents one captured log call.
type SpyLogRecord struct {
	Level string
	Msg   string
	Args  []any
}

// NewLoggerSpy creates a new LoggerSpy.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{records: make([]SpyLogRecord, 0)}
}

// Debug implements the Logger interface.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("DEBUG", msg, args)
}

// Info implements the Logger interface.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("INFO", msg, args)
}

// Warn implements the Logger interface.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("WARN", msg, args)
}

// Error implements the Logger interface.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("ERROR", msg, args)
}

func (s *LoggerSpy) record(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, SpyLogRecord{Level: level, Msg: msg, Args: args})
}

// GetRecords returns a copy of all captured log calls.
func (s *LoggerSpy) GetRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]SpyLogRecord, len(s.records))
	copy(records, s.records)

	return records
}

// HasMessage reports whether any captured record carries the given message.
func (s *LoggerSpy) HasMessage(msg string) bool {
	for _, record := range s.GetRecords() {
		if record.Msg == msg {
			return true
		}
	}

	return false
}

// Dump renders the captured records for debugging failed tests.
func (s *LoggerSpy) Dump() string {
	var b strings.Builder
	for _, record := range s.GetRecords() {
		fmt.Fprintf(&b, "%s %s %v\n", record.Level, record.Msg, record.Args)
	}

	return b.String()
}

// Reset clears all captured log calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}
