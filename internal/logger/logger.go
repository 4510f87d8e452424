package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Init sets up the global logger to append to the file at logFilePath and,
// when echo is non-nil, to echo as well. It returns the log file, which
// the caller is responsible for closing.
func Init(logFilePath string, echo io.Writer) (*os.File, error) {
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var out io.Writer = logFile
	if echo != nil {
		out = io.MultiWriter(logFile, echo)
	}
	log.SetOutput(out)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.SetPrefix("pixelsort: ")
	return logFile, nil
}
