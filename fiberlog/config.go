package fiberlog

import "github.com/sirupsen/logrus"

// Config selects the logger and the request fields emitted per call.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault is used when New gets no config. A nil Logger falls
// back to the logrus standard logger.
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
