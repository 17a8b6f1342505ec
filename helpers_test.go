package airtablemock

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetMock gives the test a pristine registry and default configuration,
// and restores both when the test is done.
func resetMock(t *testing.T) {
	t.Helper()
	Clear()
	Configure(Config{})
	t.Cleanup(func() {
		Clear()
		Configure(Config{})
	})
}

// observeLogs captures the package logs for the duration of the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	previous := SetLogger(zap.New(core))
	t.Cleanup(func() {
		SetLogger(previous)
	})
	return logs
}

func warningMessages(logs *observer.ObservedLogs) []string {
	var messages []string
	for _, entry := range logs.All() {
		if entry.Level == zapcore.WarnLevel {
			messages = append(messages, entry.Message)
		}
	}
	return messages
}

// fieldNumbers projects the "number" field out of records, for compact
// assertions on filtering and ordering.
func fieldNumbers(t *testing.T, records []Record) []int {
	t.Helper()
	numbers := make([]int, 0, len(records))
	for _, record := range records {
		value, ok := record.Fields["number"].(int)
		if !ok {
			t.Fatalf("record %s has no integer \"number\" field: %v", record.ID, record.Fields)
		}
		numbers = append(numbers, value)
	}
	return numbers
}
