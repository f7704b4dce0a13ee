package encoder

import "github.com/goware/logger"

type Option func(*Encoder)

// WithTool sets the contract tool binary, cargo by default.
func WithTool(tool string) Option {
	return func(e *Encoder) {
		if tool != "" {
			e.tool = tool
		}
	}
}

func WithRunner(r Runner) Option {
	return func(e *Encoder) {
		e.runner = r
	}
}

func WithLogger(log logger.Logger) Option {
	return func(e *Encoder) {
		e.log = log
	}
}
