package domain

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a deterministic hash of the plan sequence.
// Unlike an unordered tool-set hash, the fingerprint is order-sensitive:
// reordering the plan produces a different fingerprint, because order is part
// of the plan's meaning (prerequisites must install first).
func (p *Plan) Fingerprint() string {
	h := xxhash.New()
	for _, spec := range p.specs {
		_, _ = h.WriteString(spec.Name)
		_, _ = h.WriteString("@")
		_, _ = h.WriteString(spec.Version)
		_, _ = h.WriteString(";")
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}
