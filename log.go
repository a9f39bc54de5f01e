package main

import (
	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// configureLogging wires logrus the way the rest of the module expects to
// find it: Debug-level compiler/VM tracing surfaces only when -debug is
// passed, Info and above always surface so a misconfigured REPL or file run
// is never silent.
func configureLogging(debug bool) {
	logrus.SetFormatter(&easy.Formatter{
		LogFormat:       "[%lvl%] %msg%\n",
		TimestampFormat: "",
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
