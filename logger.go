package eddsa

import (
	"os"

	"github.com/go-i2p/logger"
)

// log is the package logger. Secret material (seeds, expanded keys, nonces)
// is never passed to it; only public keys, lengths and failure reasons are.
var log = logger.GetGoI2PLogger()

// debugI2PLevels maps LogInit levels to DEBUG_I2P values. INFO shares the
// debug setting.
var debugI2PLevels = [...]string{
	DEBUG:   "debug",
	INFO:    "debug",
	WARNING: "warn",
	ERROR:   "error",
	FATAL:   "fatal",
}

// LogInit initializes the logger with the specified level.
// The level is applied through the DEBUG_I2P and WARNFAIL_I2P environment
// variables understood by github.com/go-i2p/logger, so it affects every
// go-i2p library in the process. Levels outside DEBUG..FATAL log at debug.
func LogInit(level int) {
	if level < DEBUG || level > FATAL {
		level = DEBUG
	}
	os.Setenv("DEBUG_I2P", debugI2PLevels[level])
	if level == FATAL {
		os.Setenv("WARNFAIL_I2P", "true")
	}

	logger.InitializeGoI2PLogger()
	log = logger.GetGoI2PLogger()
}

// ParseLogLevel maps a level name ("debug", "info", "warn", "error", "fatal")
// to the constant accepted by LogInit. Unknown names map to ERROR.
func ParseLogLevel(name string) int {
	switch name {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARNING
	case "fatal":
		return FATAL
	default:
		return ERROR
	}
}
