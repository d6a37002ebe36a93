package log

import (
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

// NewLogger returns a logger tagged with the module name. Each module gets
// its own logrus instance so trace hooks can be attached per component.
func NewLogger(module string) *Logger {
	base := log.New()

	base.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})

	base.SetOutput(os.Stdout)
	base.SetLevel(log.InfoLevel)

	baselogger := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}

// SetLevel adjusts the level of the underlying logrus instance.
func (self *Logger) SetLevel(level log.Level) {
	self.Entry.Logger.SetLevel(level)
}
