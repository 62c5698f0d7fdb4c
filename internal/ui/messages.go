package ui

import (
	"munros/internal/domain"
)

// listingLoadedMsg carries a successful fetch back to the update loop
type listingLoadedMsg struct {
	seq     uint64
	listing domain.Listing
}

// listingFailedMsg carries a failed fetch back to the update loop
type listingFailedMsg struct {
	seq    uint64
	search string
	err    error
}

// debounceElapsedMsg fires when the search text has been still for the
// configured debounce period
type debounceElapsedMsg struct {
	tag uint64
}

// pagerClosedMsg is sent when the ov pager returns control
type pagerClosedMsg struct {
	what string
	err  error
}
