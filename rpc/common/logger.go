package common

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lni/dragonboat/v4/logger"
)

// --------------------------------------------------------------------------
// Custom Logger (implements logger.ILogger)
// --------------------------------------------------------------------------

// nvrpcLogger implements the ILogger interface with custom formatting
type nvrpcLogger struct {
	name   string
	level  logger.LogLevel
	logger *log.Logger
}

func (l *nvrpcLogger) SetLevel(level logger.LogLevel) {
	l.level = level
}

func (l *nvrpcLogger) Debugf(format string, args ...interface{}) {
	if l.level >= logger.DEBUG {
		l.log("DEBUG", format, args...)
	}
}

func (l *nvrpcLogger) Infof(format string, args ...interface{}) {
	if l.level >= logger.INFO {
		l.log("INFO", format, args...)
	}
}

func (l *nvrpcLogger) Warningf(format string, args ...interface{}) {
	if l.level >= logger.WARNING {
		l.log("WARN", format, args...)
	}
}

func (l *nvrpcLogger) Errorf(format string, args ...interface{}) {
	if l.level >= logger.ERROR {
		l.log("ERROR", format, args...)
	}
}

func (l *nvrpcLogger) Panicf(format string, args ...interface{}) {
	if l.level >= logger.CRITICAL {
		panic(fmt.Sprintf(format, args...))
	}
}

// log formats and writes a log message. this internal helper is used by the public methods
func (l *nvrpcLogger) log(levelStr string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-15s | %s", levelStr, l.name, message)
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// CreateLogger creates a named logger writing to stderr. Log output must
// never go to stdout: with the stdio transport, stdout is the wire.
func CreateLogger(pkgName string) logger.ILogger {
	stdLogger := log.New(os.Stderr, "", log.Ldate|log.Ltime)

	return &nvrpcLogger{
		name:   pkgName,
		level:  logger.INFO,
		logger: stdLogger,
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// parseLogLevel converts a string level to logger.LogLevel
func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG
	case "info":
		return logger.INFO
	case "warning", "warn":
		return logger.WARNING
	case "error":
		return logger.ERROR
	default:
		panic(fmt.Sprintf("invalid log level: %s. must be one of debug, info, warn, error", level))
	}
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

// InitLoggers installs the custom logger factory and configures all
// package loggers with the given level.
func InitLoggers(logLevel string) {
	logger.SetLoggerFactory(CreateLogger)

	level := parseLogLevel(logLevel)
	logger.GetLogger("rpc").SetLevel(level)
	logger.GetLogger("rpc/client").SetLevel(level)
	logger.GetLogger("rpc/codec").SetLevel(level)
	logger.GetLogger("rpc/transport").SetLevel(level)
	logger.GetLogger("queue").SetLevel(level)
	logger.GetLogger("pool").SetLevel(level)
	logger.GetLogger("cmd").SetLevel(level)
}
