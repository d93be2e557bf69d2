package client

import (
	"github.com/rs/zerolog"
)

// Logger 日志接口，args 为交替出现的 key/value
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NopLogger 丢弃所有日志
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// zerologLogger 基于 zerolog 的 Logger 实现
type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger 用 zerolog.Logger 实现 Logger 接口
func NewZerologLogger(logger zerolog.Logger) Logger {
	return &zerologLogger{logger: logger}
}

func (l *zerologLogger) Debug(msg string, args ...interface{}) {
	withFields(l.logger.Debug(), args).Msg(msg)
}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	withFields(l.logger.Info(), args).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, args ...interface{}) {
	withFields(l.logger.Warn(), args).Msg(msg)
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	withFields(l.logger.Error(), args).Msg(msg)
}

// withFields 将 key/value 参数写入事件；落单的参数记为 "arg"
func withFields(event *zerolog.Event, args []interface{}) *zerolog.Event {
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			event = event.Interface("arg", args[i])
			break
		}
		key, ok := args[i].(string)
		if !ok {
			event = event.Interface("arg", args[i])
			i--
			continue
		}
		if err, ok := args[i+1].(error); ok {
			event = event.AnErr(key, err)
			continue
		}
		event = event.Interface(key, args[i+1])
	}
	return event
}
