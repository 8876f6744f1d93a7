package util

import "log"

var flagEnableTrace = false

func EnableTrace() {
	flagEnableTrace = true
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		log.Printf(format, v...)
	}
}
