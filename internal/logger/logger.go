package logger

import "go.uber.org/zap"

var log *zap.Logger = zap.NewNop()

// Init builds the process logger. Release mode gets the JSON production
// config, anything else the human-readable development one.
func Init(ginMode string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if ginMode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	log = l
	return l, nil
}

// L returns the process logger. Before Init it is a nop logger, which
// keeps tests quiet.
func L() *zap.Logger {
	return log
}

// Set replaces the process logger (used for testing).
func Set(l *zap.Logger) {
	log = l
}
