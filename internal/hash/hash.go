package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
// It is used as the integrity checksum for snapshot payloads.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
