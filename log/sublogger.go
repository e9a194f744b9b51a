package log

import (
	"io"
	"strings"
)

// Registered sub loggers, one per subsystem
var (
	Global     *SubLogger
	Data       *SubLogger
	Agent      *SubLogger
	Investor   *SubLogger
	Engine     *SubLogger
	Statistics *SubLogger
)

func init() {
	Global = registerSubLogger("COINSIM")
	Data = registerSubLogger("DATA")
	Agent = registerSubLogger("AGENT")
	Investor = registerSubLogger("INVESTOR")
	Engine = registerSubLogger("ENGINE")
	Statistics = registerSubLogger("STATISTICS")
}

func registerSubLogger(name string) *SubLogger {
	mu.Lock()
	defer mu.Unlock()
	sl := &SubLogger{
		name:   strings.ToUpper(name),
		levels: splitLevel("INFO|WARN|ERROR"),
		output: defaultWriter,
	}
	subLoggers[sl.name] = sl
	return sl
}

// SetLevels overrides the enabled levels for a sub logger, eg "INFO|DEBUG|WARN|ERROR"
func (sl *SubLogger) SetLevels(levels string) {
	mu.Lock()
	defer mu.Unlock()
	sl.levels = splitLevel(levels)
}

// SetOutput redirects a sub logger to the supplied writer
func (sl *SubLogger) SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	sl.output = w
}

// SetGlobalLevels overrides the enabled levels for every registered sub logger
func SetGlobalLevels(levels string) {
	mu.Lock()
	defer mu.Unlock()
	l := splitLevel(levels)
	for _, sl := range subLoggers {
		sl.levels = l
	}
}

// SetGlobalOutput redirects every registered sub logger to the supplied writer
func SetGlobalOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, sl := range subLoggers {
		sl.output = w
	}
}

func splitLevel(level string) Levels {
	var l Levels
	enabled := strings.Split(level, "|")
	for i := range enabled {
		switch enabled[i] {
		case "DEBUG":
			l.Debug = true
		case "INFO":
			l.Info = true
		case "WARN":
			l.Warn = true
		case "ERROR":
			l.Error = true
		}
	}
	return l
}
