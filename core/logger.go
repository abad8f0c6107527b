/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

// traceLevel is below every apex/log level. TRACE messages are emitted as
// DEBUG, and only when core.log_level is TRACE.
const traceLevel = log.DebugLevel - 1

var (
	logLevel   log.Level
	logFileObj *os.File
)

// InitializeLogger sets up logging at core.log_level. An empty logFile logs to stdout.
func InitializeLogger(logFile string) {
	var out io.Writer = os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to open log file: "+err.Error())
			os.Exit(1)
		}
		logFileObj = f
		out = f
	}
	log.SetHandler(text.New(out))

	logLevel = parseLogLevel(GetConfigStringDefault("core.log_level", "INFO"))
	if logLevel == traceLevel {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}
}

// parseLogLevel accepts the apex/log level names plus TRACE. Unknown names mean INFO.
func parseLogLevel(name string) log.Level {
	if strings.EqualFold(name, "TRACE") {
		return traceLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ShutdownLogger closes the log file, if any.
func ShutdownLogger() {
	if logFileObj != nil {
		logFileObj.Close()
		logFileObj = nil
	}
}

func generateLogMessage(module interface{}, components ...interface{}) string {
	var message strings.Builder
	fmt.Fprintf(&message, "[%v] ", module)
	for _, component := range components {
		fmt.Fprint(&message, component)
	}
	return message.String()
}

// logAt emits the message if level is enabled.
func logAt(level log.Level, module interface{}, components []interface{}) {
	if level < logLevel {
		return
	}
	message := generateLogMessage(module, components...)
	switch level {
	case log.FatalLevel:
		log.Fatal(message)
	case log.ErrorLevel:
		log.Error(message)
	case log.WarnLevel:
		log.Warn(message)
	case log.InfoLevel:
		log.Info(message)
	default:
		log.Debug(message)
	}
}

// LogFatal logs a message at the FATAL level and exits.
func LogFatal(module interface{}, components ...interface{}) {
	logAt(log.FatalLevel, module, components)
}

// LogError logs a message at the ERROR level.
func LogError(module interface{}, components ...interface{}) {
	logAt(log.ErrorLevel, module, components)
}

// LogWarn logs a message at the WARN level.
func LogWarn(module interface{}, components ...interface{}) {
	logAt(log.WarnLevel, module, components)
}

// LogInfo logs a message at the INFO level.
func LogInfo(module interface{}, components ...interface{}) {
	logAt(log.InfoLevel, module, components)
}

// LogDebug logs a message at the DEBUG level.
func LogDebug(module interface{}, components ...interface{}) {
	logAt(log.DebugLevel, module, components)
}

// LogTrace logs a message at the TRACE level.
func LogTrace(module interface{}, components ...interface{}) {
	logAt(traceLevel, module, components)
}
