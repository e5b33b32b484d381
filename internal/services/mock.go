package services

import (
	"errors"
	"sync"

	"github.com/gallows/hangman/internal/types"
)

// ErrNoMoreInput is returned by MockConsole once its scripted inputs are used up.
var ErrNoMoreInput = errors.New("no more scripted input")

// Operation names recorded by the mocks.
const (
	OpReadLine = "readLine"
	OpPrintln  = "println"
	OpPickWord = "pickWord"
)

// Call is one recorded interaction with a mock collaborator.
type Call struct {
	Op    string
	Value string
}

// MockConsole is a Console that replays scripted input lines and records everything it is asked to do.
type MockConsole struct {
	mu      sync.Mutex
	inputs  []string
	outputs []string
	calls   []Call
}

// NewMockConsole creates a console that will return inputs in order.
func NewMockConsole(inputs ...string) *MockConsole {
	return &MockConsole{
		inputs:  append([]string(nil), inputs...),
		outputs: make([]string, 0),
		calls:   make([]Call, 0),
	}
}

// ReadLine returns the next scripted input, or ErrNoMoreInput.
func (m *MockConsole) ReadLine() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.inputs) == 0 {
		m.calls = append(m.calls, Call{Op: OpReadLine})
		return "", ErrNoMoreInput
	}
	line := m.inputs[0]
	m.inputs = m.inputs[1:]
	m.calls = append(m.calls, Call{Op: OpReadLine, Value: line})
	return line, nil
}

// Println records message.
func (m *MockConsole) Println(message string) types.Unit {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outputs = append(m.outputs, message)
	m.calls = append(m.calls, Call{Op: OpPrintln, Value: message})
	return types.UnitValue
}

// Outputs returns every printed message.
func (m *MockConsole) Outputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	outputs := make([]string, len(m.outputs))
	copy(outputs, m.outputs)
	return outputs
}

// Calls returns every recorded interaction in order.
func (m *MockConsole) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]Call, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Remaining returns the number of unread inputs.
func (m *MockConsole) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.inputs)
}

func (m *MockConsole) record(call Call) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, call)
}

// MockEnvironment is an Environment over a MockConsole and a fixed word.
// Word picks are recorded in the console's call log.
type MockEnvironment struct {
	*MockConsole
	word string
}

// NewMockEnvironment creates a test environment that always picks word.
func NewMockEnvironment(word string, inputs ...string) *MockEnvironment {
	return &MockEnvironment{
		MockConsole: NewMockConsole(inputs...),
		word:        word,
	}
}

// PickWord returns the fixed word.
func (m *MockEnvironment) PickWord() string {
	m.record(Call{Op: OpPickWord, Value: m.word})
	return m.word
}

// ReadCharacter returns the first character of the next scripted line.
func (m *MockEnvironment) ReadCharacter() (rune, error) {
	return FirstCharacter(m.MockConsole)
}
