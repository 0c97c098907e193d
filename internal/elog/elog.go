// Package elog is the editor's logging wrapper: plain stdlib log.Printf
// with a bracketed level tag, gated by $EDGE_DEBUG, grounded on
// amantus-ai-vibetunnel's log.Printf("[DEBUG] ...")/os.Getenv pattern
// (pkg/session/manager.go).
package elog

import (
	"log"
	"os"
)

var debugEnabled = os.Getenv("EDGE_DEBUG") != ""

func Debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	log.Printf("[DEBUG] "+format, args...)
}

func Infof(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

func Warnf(format string, args ...any) {
	log.Printf("[WARN] "+format, args...)
}

func Errorf(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}
