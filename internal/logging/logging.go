package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup routes the standard logger to stdout and a size-rotated file under
// logDir. Returned closer flushes the rotated file on shutdown.
func Setup(logDir string) io.Closer {
	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "server.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}

	log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	log.SetFlags(log.Ldate | log.Ltime)
	return rotated
}
