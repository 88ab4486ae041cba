package ports

import "context"

// CandidateResolver verifies that a pinned tool version is actually published
// for the current platform, without mutating the environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type CandidateResolver interface {
	// Resolve returns nil when the version exists for the current platform.
	// It should check a local cache first, then query the candidate API.
	Resolve(ctx context.Context, tool, version string) error
}
