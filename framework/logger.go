package framework

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used throughout the harness. *log.Logger satisfies it.
type Logger interface {
	Println(args ...interface{})
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Println(args ...interface{})                {}
func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards all output.
func NullLogger() Logger { return nullLogger{} }

// NewWriterLogger returns a Logger that writes timestamped lines to the given writer.
func NewWriterLogger(w io.Writer) Logger {
	return log.New(w, "", log.LstdFlags)
}

// CapturedMessage is a single line of output captured by a CapturingLogger.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the ordered output of a CapturingLogger.
type CapturedOutput []CapturedMessage

// CapturingLogger records all debug output from a test scope, so that the output of a single
// API call can be attached to the test that made it. See ldtest.(*T).DebugLogger() for the
// rules of logging in parent/child scopes.
type CapturingLogger struct {
	output   CapturedOutput
	children []*CapturingLogger
	lock     sync.Mutex
}

func (l *CapturingLogger) Println(args ...interface{}) {
	l.append(CapturedMessage{
		Time:    time.Now(),
		Message: strings.TrimRight(fmt.Sprintln(args...), "\r\n"),
	})
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.append(CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
}

func (l *CapturingLogger) append(msg CapturedMessage) {
	l.lock.Lock()
	children := append([]*CapturingLogger(nil), l.children...)
	if len(children) == 0 {
		l.output = append(l.output, msg)
	}
	l.lock.Unlock()
	for _, c := range children {
		c.append(msg)
	}
}

// Output returns a snapshot of everything captured so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.output...)
}

// AddChildLogger redirects further output to the child, which starts with a copy of what this
// logger has already captured.
func (l *CapturingLogger) AddChildLogger(child *CapturingLogger) {
	l.lock.Lock()
	l.children = append(l.children, child)
	inherited := append(CapturedOutput(nil), l.output...)
	l.lock.Unlock()

	child.lock.Lock()
	child.output = append(inherited, child.output...)
	child.lock.Unlock()
}

func (l *CapturingLogger) RemoveChildLogger(child *CapturingLogger) {
	l.lock.Lock()
	defer l.lock.Unlock()
	for i, c := range l.children {
		if c == child {
			l.children = append(l.children[:i], l.children[i+1:]...)
			return
		}
	}
}

// ToString formats the captured lines with timestamps, putting prefix at the start of each line.
func (output CapturedOutput) ToString(prefix string) string {
	lines := make([]string, 0, len(output))
	for _, msg := range output {
		lines = append(lines, fmt.Sprintf("%s[%s] %s", prefix, msg.Time.Format(timestampFormat), msg.Message))
	}
	return strings.Join(lines, "\n")
}

type prefixedLogger struct {
	base   Logger
	prefix string
}

// LoggerWithPrefix returns a Logger that adds a fixed prefix to every message.
func LoggerWithPrefix(baseLogger Logger, prefix string) Logger {
	return prefixedLogger{base: baseLogger, prefix: prefix}
}

func (p prefixedLogger) Println(args ...interface{}) {
	p.base.Println(append([]interface{}{p.prefix}, args...)...)
}

func (p prefixedLogger) Printf(message string, args ...interface{}) {
	p.base.Printf(p.prefix+message, args...)
}

type multiLogger []Logger

// MultiLogger returns a Logger that sends every message to all of the given loggers.
func MultiLogger(loggers ...Logger) Logger {
	return multiLogger(loggers)
}

func (m multiLogger) Println(args ...interface{}) {
	for _, l := range m {
		l.Println(args...)
	}
}

func (m multiLogger) Printf(message string, args ...interface{}) {
	for _, l := range m {
		l.Printf(message, args...)
	}
}
