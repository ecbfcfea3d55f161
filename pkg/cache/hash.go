package cache

import (
	"crypto/sha256"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Hash is a 32-byte cryptographic digest, used for both a file's content
// hash and a configuration's hash.
type Hash [32]byte

// hasher computes content hashes with a fast xxhash pre-check: xxhash is
// ~20x cheaper than sha256, so a process that re-hashes the same byte-
// identical content more than once (e.g. a file revisited across a batch)
// skips the cryptographic recompute on a fast-hash hit.
type hasher struct {
	mu    sync.Mutex
	cache map[uint64]Hash
}

func newHasher() *hasher {
	return &hasher{cache: make(map[uint64]Hash)}
}

// contentHash returns the cryptographic hash of content, consulting the
// xxhash-keyed cache first.
func (h *hasher) contentHash(content []byte) Hash {
	fast := xxhash.Sum64(content)

	h.mu.Lock()
	if cached, ok := h.cache[fast]; ok {
		h.mu.Unlock()
		return cached
	}
	h.mu.Unlock()

	full := Hash(sha256.Sum256(content))

	h.mu.Lock()
	h.cache[fast] = full
	h.mu.Unlock()

	return full
}

// ContentHash computes the 32-byte cryptographic content hash directly,
// without the process-local fast-hash cache (used where no hasher instance
// is in scope, e.g. tests and one-off callers).
func ContentHash(content []byte) Hash {
	return Hash(sha256.Sum256(content))
}
