package board

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the lanes and items of s, including order. Equal
// snapshots have equal fingerprints.
func (s Snapshot) Fingerprint() uint64 {
	hasher := xxhash.New()

	for _, lane := range s.lanes {
		_, _ = hasher.WriteString(lane.Key)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(lane.Title)
		_, _ = hasher.Write([]byte{0})

		for _, item := range lane.Items {
			_, _ = hasher.WriteString(item.Key)
			_, _ = hasher.Write([]byte{0})
			_, _ = hasher.WriteString(item.Title)
			_, _ = hasher.Write([]byte{0})
			_, _ = hasher.WriteString(item.Description)
			_, _ = hasher.Write([]byte{0})
			_, _ = hasher.WriteString(strconv.Itoa(item.Order))
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{1}) // Lane separator
	}

	return hasher.Sum64()
}
