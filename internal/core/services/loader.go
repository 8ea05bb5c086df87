package services

import "time"

// LoaderOption customizes a feed loader.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	now func() time.Time
}

// WithClock sets the clock used for audit fields, import dates and run log timestamps.
func WithClock(now func() time.Time) LoaderOption {
	return func(o *loaderOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func applyLoaderOptions(opts []LoaderOption) loaderOptions {
	o := loaderOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
