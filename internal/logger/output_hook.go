package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// OutputRouterHook writes user logs to one writer and operational logs to
// another, each with its own formatter.
type OutputRouterHook struct {
	UserFormatter logrus.Formatter
	OpFormatter   logrus.Formatter

	mu         sync.Mutex
	UserWriter io.Writer
	OpWriter   io.Writer
}

var (
	routerMu sync.Mutex
	router   *OutputRouterHook
)

// NewOutputRouterHook creates a hook writing user logs to stdout and
// operational logs to stderr. The most recent hook is the one SetOutputs
// redirects.
func NewOutputRouterHook() *OutputRouterHook {
	hook := &OutputRouterHook{
		UserFormatter: &CLIFormatter{
			DisableTimestamp: true,
			DisableLevel:     true,
		},
		OpFormatter: &CLIFormatter{},
		UserWriter:  os.Stdout,
		OpWriter:    os.Stderr,
	}

	routerMu.Lock()
	router = hook
	routerMu.Unlock()
	return hook
}

// SetOutputs redirects the active router hook. It is a no-op before Setup.
func SetOutputs(user, op io.Writer) {
	routerMu.Lock()
	hook := router
	routerMu.Unlock()
	if hook == nil {
		return
	}

	hook.mu.Lock()
	defer hook.mu.Unlock()
	hook.UserWriter = user
	hook.OpWriter = op
}

// Levels returns all log levels (this hook processes all levels)
func (h *OutputRouterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire is called when a log event is fired
func (h *OutputRouterHook) Fire(entry *logrus.Entry) error {
	logType, _ := entry.Data["log_type"].(string)

	var formatter logrus.Formatter
	var writer io.Writer

	h.mu.Lock()
	defer h.mu.Unlock()

	if logType == string(UserLog) {
		formatter = h.UserFormatter
		writer = h.UserWriter

		if emoji, ok := entry.Data["emoji"].(string); ok && emoji != "" {
			entry.Message = emoji + " " + entry.Message
		}
	} else {
		formatter = h.OpFormatter
		writer = h.OpWriter
	}

	bytes, err := formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = writer.Write(bytes)
	return err
}
