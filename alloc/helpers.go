package alloc

import "unsafe"

// Intrusive free lists store the address of the next free block inside the
// first word of the freed block itself - zero bookkeeping overhead. The
// storage is pinned by the owning allocator's chunk references, so the
// stored addresses stay valid for as long as the list does.

// loadLink reads the next-free-block address stored at address.
func loadLink(address uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(address))
}

// storeLink writes the next-free-block address into the word at address.
func storeLink(address, next uintptr) {
	*(*uintptr)(unsafe.Pointer(address)) = next
}
