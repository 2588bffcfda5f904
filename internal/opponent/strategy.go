package opponent

import "context"

// Source tags where an opponent move came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// FetchResult is a validated opponent move plus its provenance.
type FetchResult struct {
	Throw  string
	Source Source
}

// Strategy produces an opponent move. Remote strategies may fail; the
// Client facade is responsible for recovering.
type Strategy interface {
	Fetch(ctx context.Context) (FetchResult, error)
}
