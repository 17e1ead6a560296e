/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// Level defines a log level for logging messages.
type Level int

// Log levels.
const (
	DEBUG   = Level(zapcore.DebugLevel)
	INFO    = Level(zapcore.InfoLevel)
	WARNING = Level(zapcore.WarnLevel)
	ERROR   = Level(zapcore.ErrorLevel)
	PANIC   = Level(zapcore.PanicLevel)
	FATAL   = Level(zapcore.FatalLevel)

	minLogLevel  = DEBUG
	defaultLevel = INFO
)

const defaultModuleName = ""

var levels = &moduleLevels{levels: map[string]Level{}} //nolint: gochecknoglobals

// String returns string representation of given log level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARN"
	case ERROR:
		return "ERROR"
	case PANIC:
		return "PANIC"
	case FATAL:
		return "FATAL"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// ParseLevel returns the level from the given string.
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARNING, nil
	case "ERROR":
		return ERROR, nil
	case "PANIC":
		return PANIC, nil
	case "FATAL":
		return FATAL, nil
	default:
		return ERROR, errors.New("logger: invalid log level")
	}
}

// SetLevel sets the log level for given module.
func SetLevel(module string, level Level) {
	levels.set(module, level)
}

// SetDefaultLevel sets the default log level.
func SetDefaultLevel(level Level) {
	levels.set(defaultModuleName, level)
}

// GetLevel returns the log level for the given module.
func GetLevel(module string) Level {
	return levels.get(module)
}

// SetSpec sets the log levels for individual modules as well as the default log level.
// The format of the log level string is as follows:
//
//	module1=level1:module2=level2:module3=level3:defaultLevel
//
// Example:
//
//	finalize-service=debug:offer-ingestion=warning:info
func SetSpec(spec string) error {
	parsed := map[string]Level{}
	hasDefault := false

	for _, part := range strings.Split(spec, ":") {
		module, lvl, found := strings.Cut(part, "=")
		if !found {
			if hasDefault {
				return errors.New("multiple default values found")
			}

			module, lvl, hasDefault = defaultModuleName, part, true
		}

		level, err := ParseLevel(lvl)
		if err != nil {
			return err
		}

		parsed[module] = level
	}

	if !hasDefault {
		parsed[defaultModuleName] = defaultLevel
	}

	for module, level := range parsed {
		levels.set(module, level)
	}

	return nil
}

// GetSpec returns the log spec in the format accepted by SetSpec.
func GetSpec() string {
	all := levels.all()

	modules := make([]string, 0, len(all))

	for module := range all {
		if module != defaultModuleName {
			modules = append(modules, module)
		}
	}

	sort.Strings(modules)

	var b strings.Builder

	for _, module := range modules {
		fmt.Fprintf(&b, "%s=%s:", module, all[module])
	}

	def, ok := all[defaultModuleName]
	if !ok {
		def = defaultLevel
	}

	b.WriteString(def.String())

	return b.String()
}

type moduleLevels struct {
	mutex  sync.RWMutex
	levels map[string]Level
}

func (l *moduleLevels) get(module string) Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if level, ok := l.levels[module]; ok {
		return level
	}

	if level, ok := l.levels[defaultModuleName]; ok {
		return level
	}

	return defaultLevel
}

func (l *moduleLevels) set(module string, level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.levels[module] = level
}

func (l *moduleLevels) all() map[string]Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	res := make(map[string]Level, len(l.levels))

	for module, level := range l.levels {
		res[module] = level
	}

	return res
}

func (l *moduleLevels) isEnabled(module string, level Level) bool {
	return level >= l.get(module)
}
