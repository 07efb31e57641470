package consoles

import (
	"fmt"
	"strings"
	"sync"
)

// MemoryConsole keeps everything printed, one entry per call. Useful in tests.
type MemoryConsole struct {
	mutex    sync.Mutex
	prefixes []string

	Lines    []string
	Warnings []string
}

func NewMemoryConsole() *MemoryConsole {
	return &MemoryConsole{}
}

func (m *MemoryConsole) Printf(format string, a ...any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.Lines = append(m.Lines, m.prepare(format, a...))
}

func (m *MemoryConsole) Debugf(string, ...any) {
}

func (m *MemoryConsole) Warnf(format string, a ...any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.Warnings = append(m.Warnings, m.prepare(format, a...))
}

func (m *MemoryConsole) PushPrefix(format string, a ...any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.prefixes = append(m.prefixes, fmt.Sprintf(format, a...))
}

func (m *MemoryConsole) PopPrefix() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.prefixes = m.prefixes[:len(m.prefixes)-1]
}

func (m *MemoryConsole) Prepare(format string, a ...any) string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.prepare(format, a...)
}

func (m *MemoryConsole) prepare(format string, a ...any) string {
	return strings.TrimRight(strings.Join(m.prefixes, "")+fmt.Sprintf(format, a...), "\n")
}

func (m *MemoryConsole) Output() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return strings.Join(m.Lines, "\n")
}
