// Package vmem is the library's only syscall boundary: a thin wrapper over
// the operating system's virtual-memory lifecycle.
//
// The lifecycle has four steps:
//
//   - Reserve claims a range of address space with no physical backing.
//   - Commit backs a reserved range with physical pages.
//   - Decommit returns the physical pages while keeping the reservation.
//   - Release frees the address-space reservation entirely.
//
// Platform backends are selected by build tags, following the same split
// used for memory-mapped file access:
//
//   - vmem_unix.go: mmap/mprotect/madvise via golang.org/x/sys/unix
//   - vmem_windows.go: VirtualAlloc/VirtualFree via golang.org/x/sys/windows
//   - vmem_fallback.go: plain heap slabs where neither is available
//
// All operations report failure as an error; no retries are performed.
// Callers decide what failure means - the allocator layer above converts
// it into the empty-block sentinel.
package vmem
