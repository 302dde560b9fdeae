// Package log writes playback diagnostics to a dated file under the logs directory.
//
// Nothing is written unless logs.write is set. Entries of a playback session
// carry fields naming the attachment and the engine socket they came from, so
// interleaved sessions can be told apart in a single file.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ava-cli/ava/filesystem"
	"github.com/ava-cli/ava/key"
	"github.com/ava-cli/ava/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Field names shared by the packages that tag their entries.
const (
	FieldAttachment = "attachment"
	FieldSource     = "src"
	FieldSocket     = "socket"
)

// Fields annotate an entry.
type Fields = logrus.Fields

var enabled bool

// Setup opens today's log file and applies the configured format and level.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Entry is a logger carrying fields. It is safe to use before Setup and
// writes nothing while logging is disabled.
type Entry struct {
	fields Fields
}

// With starts an entry with fields.
func With(fields Fields) Entry {
	return Entry{}.With(fields)
}

// With returns a copy of e extended with fields.
func (e Entry) With(fields Fields) Entry {
	return Entry{fields: lo.Assign(e.fields, fields)}
}

// Fields returns the fields e attaches to its entries.
func (e Entry) Fields() Fields {
	return e.fields
}

func (e Entry) log(level logrus.Level, args ...interface{}) {
	if enabled {
		logrus.WithFields(e.fields).Log(level, args...)
	}
}

func (e Entry) logf(level logrus.Level, format string, args ...interface{}) {
	if enabled {
		logrus.WithFields(e.fields).Logf(level, format, args...)
	}
}

func (e Entry) Error(args ...interface{})                 { e.log(logrus.ErrorLevel, args...) }
func (e Entry) Errorf(format string, args ...interface{}) { e.logf(logrus.ErrorLevel, format, args...) }
func (e Entry) Warn(args ...interface{})                  { e.log(logrus.WarnLevel, args...) }
func (e Entry) Warnf(format string, args ...interface{})  { e.logf(logrus.WarnLevel, format, args...) }
func (e Entry) Info(args ...interface{})                  { e.log(logrus.InfoLevel, args...) }
func (e Entry) Infof(format string, args ...interface{})  { e.logf(logrus.InfoLevel, format, args...) }
func (e Entry) Debug(args ...interface{})                 { e.log(logrus.DebugLevel, args...) }
func (e Entry) Debugf(format string, args ...interface{}) { e.logf(logrus.DebugLevel, format, args...) }

// Entries without fields, for code outside a playback session.

var root Entry

func Error(args ...interface{})                 { root.Error(args...) }
func Errorf(format string, args ...interface{}) { root.Errorf(format, args...) }
func Warn(args ...interface{})                  { root.Warn(args...) }
func Warnf(format string, args ...interface{})  { root.Warnf(format, args...) }
func Info(args ...interface{})                  { root.Info(args...) }
func Infof(format string, args ...interface{})  { root.Infof(format, args...) }
func Debug(args ...interface{})                 { root.Debug(args...) }
func Debugf(format string, args ...interface{}) { root.Debugf(format, args...) }
