package threadpool

import "log/slog"

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithLogger sets the logger used for pool lifecycle events and task panic
// reports. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPanicHandler installs a handler invoked with the recovered value
// whenever a task panics. The handler runs on the worker goroutine after the
// panic has been contained; the pool itself never propagates task failures.
func WithPanicHandler(handler func(recovered any)) Option {
	return func(p *Pool) {
		p.onPanic = handler
	}
}

// WithID sets the pool identifier used in logs and metrics labels. The
// default is a random UUID.
func WithID(id string) Option {
	return func(p *Pool) {
		if id != "" {
			p.id = id
		}
	}
}
