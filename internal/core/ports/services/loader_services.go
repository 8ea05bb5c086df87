package services

import "context"

// FeedFetcher downloads a published feed file.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// LoaderSvc runs one end-to-end load of a feed.
// Run never fails: every error ends up in the run log and the result is the success flag.
type LoaderSvc interface {
	Run(ctx context.Context) bool
}
