package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// LogType tags an entry with the audience it is written for.
type LogType string

const (
	UserLog LogType = "user"
	OpLog   LogType = "op"
)

// UnifiedLogger owns the single logrus logger behind User and Op.
type UnifiedLogger struct {
	mu     sync.RWMutex
	logger *logrus.Logger
}

var (
	unifiedLog *UnifiedLogger
	once       sync.Once
)

// GetLogger returns the process-wide logger, creating it on first use.
func GetLogger() *UnifiedLogger {
	once.Do(func() {
		base := logrus.New()
		base.SetOutput(os.Stdout)
		base.SetLevel(logrus.InfoLevel)
		base.SetFormatter(&CLIFormatter{DisableTimestamp: true, DisableLevel: true})
		unifiedLog = &UnifiedLogger{logger: base}
	})
	return unifiedLog
}

// GetInternalLogger returns the underlying logrus logger.
func (l *UnifiedLogger) GetInternalLogger() *logrus.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

// Level reports the level entries must reach to be written.
func (l *UnifiedLogger) Level() logrus.Level {
	return l.GetInternalLogger().GetLevel()
}

// apply reconfigures the logger for a new mode and installs hook as its only
// output.
func (l *UnifiedLogger) apply(level logrus.Level, formatter logrus.Formatter, hook logrus.Hook) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.ReplaceHooks(make(logrus.LevelHooks))
	l.logger.SetOutput(io.Discard)
	l.logger.SetLevel(level)
	l.logger.SetFormatter(formatter)
	l.logger.AddHook(hook)
}
