// Package sdfgenlog provides the thin logging wrapper used across the CLI
// and job pipeline. It deliberately stays on the standard log package: the
// teacher repo never reaches for a structured logging library either,
// calling log.Printf directly from app.go, so this repo keeps that same
// ambient choice rather than introducing one the teacher does not use.
package sdfgenlog

import "log"

// Warnf logs an advisory warning, prefixed so it reads distinctly from
// fatal errors in console output.
func Warnf(format string, args ...interface{}) {
	log.Printf("warning: "+format, args...)
}

// Infof logs a routine progress message.
func Infof(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// Errorf logs an error that is about to be returned to the caller.
func Errorf(format string, args ...interface{}) {
	log.Printf("error: "+format, args...)
}
