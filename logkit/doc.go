// Package logkit provides the shared logging facility for responder
// components.
//
// Every component obtains a uniquely named logger from a Registry. All
// loggers bound to the same registry share one output sink and one line
// formatter, so log output stays consistent across the process. The
// component name on each line is colorized deterministically: the same
// name maps to the same color on every run, with no coordination
// between processes.
//
// # Usage
//
//	reg := logkit.New(logkit.Config{Level: "debug"})
//	log := reg.LoggerFor("http")
//	log.Info("listening on :8080")
package logkit
