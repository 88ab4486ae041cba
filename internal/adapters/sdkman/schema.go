package sdkman

import (
	"slices"
	"time"
)

// cacheEntry is the on-disk representation of a candidate's version list for
// one platform.
type cacheEntry struct {
	Tool      string    `json:"tool"`
	Platform  string    `json:"platform"`
	Versions  []string  `json:"versions"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *cacheEntry) contains(version string) bool {
	return slices.Contains(e.Versions, version)
}
