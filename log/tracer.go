package log

import (
	"fmt"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// AddTracer mirrors debug and warning output of logger into per-run trace
// files next to path.
func AddTracer(logger *Logger, path string) {
	pathMap := lfshook.PathMap{
		log.DebugLevel: path + ".trace",
		log.WarnLevel:  path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.Entry.Logger.Hooks.Add(hook)
	logger.Entry.Logger.SetLevel(log.DebugLevel)
}

// SetConfig loads an optional config file into viper.
func SetConfig(configFile string) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %s", err))
		}
	}
}
