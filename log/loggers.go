package log

import (
	"fmt"
	"time"
)

// Info takes a pointer subLogger struct and string, prints at info level
func Info(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Info {
		return
	}
	sl.stage(infoHeader, data)
}

// Infoln takes a pointer subLogger struct and interfaces, prints at info level
func Infoln(sl *SubLogger, v ...interface{}) {
	Info(sl, fmt.Sprint(v...))
}

// Infof takes a pointer subLogger struct, format string and interfaces, prints at info level
func Infof(sl *SubLogger, data string, v ...interface{}) {
	Info(sl, fmt.Sprintf(data, v...))
}

// Debug takes a pointer subLogger struct and string, prints at debug level
func Debug(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Debug {
		return
	}
	sl.stage(debugHeader, data)
}

// Debugln takes a pointer subLogger struct and interfaces, prints at debug level
func Debugln(sl *SubLogger, v ...interface{}) {
	Debug(sl, fmt.Sprint(v...))
}

// Debugf takes a pointer subLogger struct, format string and interfaces, prints at debug level
func Debugf(sl *SubLogger, data string, v ...interface{}) {
	Debug(sl, fmt.Sprintf(data, v...))
}

// Warn takes a pointer subLogger struct and string, prints at warn level
func Warn(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Warn {
		return
	}
	sl.stage(warnHeader, data)
}

// Warnln takes a pointer subLogger struct and interfaces, prints at warn level
func Warnln(sl *SubLogger, v ...interface{}) {
	Warn(sl, fmt.Sprint(v...))
}

// Warnf takes a pointer subLogger struct, format string and interfaces, prints at warn level
func Warnf(sl *SubLogger, data string, v ...interface{}) {
	Warn(sl, fmt.Sprintf(data, v...))
}

// Error takes a pointer subLogger struct and interfaces, prints at error level
func Error(sl *SubLogger, data ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Error {
		return
	}
	sl.stage(errorHeader, fmt.Sprint(data...))
}

// Errorln takes a pointer subLogger struct and interfaces, prints at error level
func Errorln(sl *SubLogger, v ...interface{}) {
	Error(sl, fmt.Sprint(v...))
}

// Errorf takes a pointer subLogger struct, format string and interfaces, prints at error level
func Errorf(sl *SubLogger, data string, v ...interface{}) {
	Error(sl, fmt.Sprintf(data, v...))
}

func (sl *SubLogger) stage(header, data string) {
	if sl.output == nil {
		return
	}
	fmt.Fprintf(sl.output, "%s%s%s%s%s%s\n",
		header,
		spacer,
		sl.name,
		spacer,
		time.Now().Format(timestampFormat)+spacer,
		data)
}
