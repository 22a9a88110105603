package alloc

import "github.com/RDFacendola/Syntropy-sub001/memory"

// Stats is a point-in-time snapshot of an allocator's activity, kept for
// instrumentation and tests. InUse counts the bytes currently consumed
// from the allocator's storage, padding included; Peak is its high-water
// mark across the allocator's lifetime (rewinds do not lower it).
type Stats struct {
	Allocations   int64
	Deallocations int64
	InUse         memory.Bytes
	Peak          memory.Bytes
}

// consume records in-use bytes moving to the given level.
func (s *Stats) consume(inUse memory.Bytes) {
	s.InUse = inUse
	if inUse > s.Peak {
		s.Peak = inUse
	}
}
