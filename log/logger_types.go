package log

import (
	"io"
	"os"
	"sync"
)

const (
	timestampFormat = "02/01/2006 15:04:05"
	spacer          = " | "

	infoHeader  = "[INFO]"
	warnHeader  = "[WARN]"
	debugHeader = "[DEBUG]"
	errorHeader = "[ERROR]"
)

var (
	// mu guards the registry and every staged write
	mu         = &sync.RWMutex{}
	subLoggers = map[string]*SubLogger{}

	defaultWriter io.Writer = os.Stdout
)

// Levels flags for each sub logger type
type Levels struct {
	Info, Debug, Warn, Error bool
}

// SubLogger is an independently levelled logging channel for one subsystem
type SubLogger struct {
	name   string
	levels Levels
	output io.Writer
}
