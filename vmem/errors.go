package vmem

import "errors"

var (
	// ErrReserve indicates the OS refused to reserve address space.
	ErrReserve = errors.New("vmem: reserve failed")

	// ErrCommit indicates physical backing could not be obtained for a
	// reserved range.
	ErrCommit = errors.New("vmem: commit failed")

	// ErrDecommit indicates physical backing could not be returned.
	ErrDecommit = errors.New("vmem: decommit failed")

	// ErrRelease indicates the address-space reservation could not be freed.
	ErrRelease = errors.New("vmem: release failed")

	// ErrBadSize indicates a non-positive or non-page-rounded size where one
	// is required.
	ErrBadSize = errors.New("vmem: invalid size")
)
