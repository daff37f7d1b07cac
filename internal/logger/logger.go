// Package logger splits output into user messages on stdout and operational
// logs on stderr, both backed by one logrus logger.
package logger

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	User *UserLogger // short messages for whoever runs the solver
	Op   *OpLogger   // structured search internals
)

func init() {
	base := GetLogger().GetInternalLogger()
	User = &UserLogger{logger: base}
	Op = &OpLogger{logger: base}
}

type UserLogger struct {
	logger *logrus.Logger
}

func (u *UserLogger) entry(emoji string) *logrus.Entry {
	return u.logger.WithFields(logrus.Fields{
		"log_type": string(UserLog),
		"emoji":    emoji,
	})
}

// Startingf announces the maze about to be solved.
func (u *UserLogger) Startingf(format string, args ...interface{}) {
	u.entry("🚀").Infof(format, args...)
}

// Goalf reports a search that reached a goal.
func (u *UserLogger) Goalf(format string, args ...interface{}) {
	u.entry("🏁").Infof(format, args...)
}

// DeadEndf reports a search that ran out of nodes.
func (u *UserLogger) DeadEndf(format string, args ...interface{}) {
	u.entry("🚧").Warnf(format, args...)
}

type OpLogger struct {
	logger *logrus.Logger
}

func (o *OpLogger) Debug(msg string) {
	o.logger.WithField("log_type", string(OpLog)).Debug(msg)
}

func (o *OpLogger) Errorf(format string, args ...interface{}) {
	o.logger.WithField("log_type", string(OpLog)).Errorf(format, args...)
}

// WithFields returns an operational entry carrying fields.
func (o *OpLogger) WithFields(fields map[string]interface{}) *logrus.Entry {
	data := make(logrus.Fields, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	data["log_type"] = string(OpLog)
	return o.logger.WithFields(data)
}

var levelColors = map[logrus.Level]string{
	logrus.ErrorLevel: "\033[31m",
	logrus.WarnLevel:  "\033[33m",
	logrus.InfoLevel:  "\033[36m",
	logrus.DebugLevel: "\033[37m",
}

// CLIFormatter writes one plain line per entry: optional time and level,
// the message, then fields sorted by key.
type CLIFormatter struct {
	DisableTimestamp bool
	DisableLevel     bool
	DisableColors    bool
}

func (f *CLIFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if !f.DisableTimestamp {
		b.WriteString(entry.Time.Format("15:04:05.000 "))
	}
	if !f.DisableLevel {
		level := strings.ToUpper(entry.Level.String())
		if color, ok := levelColors[entry.Level]; ok && !f.DisableColors {
			level = color + level + "\033[0m"
		}
		b.WriteString(level + ": ")
	}
	b.WriteString(entry.Message)

	// user lines are the message alone
	if f.DisableLevel && f.DisableTimestamp {
		b.WriteByte('\n')
		return b.Bytes(), nil
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "log_type" && k != "emoji" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// mode is the resolved logging setup.
type mode struct {
	verbose bool
	json    bool
	quiet   bool
}

// withEnv applies LOG_MODE and LOG_FORMAT, which take precedence over flags.
func (m mode) withEnv() mode {
	switch os.Getenv("LOG_MODE") {
	case "quiet":
		m.quiet, m.verbose = true, false
	case "verbose", "debug":
		m.verbose, m.quiet = true, false
	}
	switch os.Getenv("LOG_FORMAT") {
	case "json":
		m.json = true
	case "text":
		m.json = false
	}
	return m
}

func (m mode) level() logrus.Level {
	switch {
	case m.quiet:
		return logrus.ErrorLevel
	case m.verbose:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// Setup configures User and Op for the given flags. Output goes through an
// OutputRouterHook; see SetOutputs to redirect it.
func Setup(verbose bool, jsonLogs bool, quiet bool) {
	m := mode{verbose: verbose, json: jsonLogs, quiet: quiet}.withEnv()

	hook := NewOutputRouterHook()
	var formatter logrus.Formatter = &logrus.TextFormatter{}
	if m.json {
		formatter = &logrus.JSONFormatter{}
		hook.UserFormatter = &logrus.JSONFormatter{}
		hook.OpFormatter = &logrus.JSONFormatter{}
	} else {
		hook.OpFormatter = &CLIFormatter{
			DisableTimestamp: !m.verbose,
			DisableColors:    !isatty.IsTerminal(os.Stderr.Fd()),
		}
	}

	ul := GetLogger()
	ul.apply(m.level(), formatter, hook)

	base := ul.GetInternalLogger()
	User = &UserLogger{logger: base}
	Op = &OpLogger{logger: base}
}
