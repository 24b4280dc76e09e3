// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package pagination cuts the client-side materials list into pages. The
// upstream returns the full list in one response; the frame here is pure
// arithmetic over its length, recomputed after every mutation so the current
// page is always valid.
package pagination

// PageSizes are the selectable page sizes, in display order.
var PageSizes = []int{5, 10, 20, 50}

// DefaultPageSize is used when the client has not picked a size.
const DefaultPageSize = 10

// Frame is a validated pagination state: a 1-based page within bounds for
// the given total.
type Frame struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	PageCount  int `json:"page_count"`
	TotalItems int `json:"total_items"`
}

// ValidSize reports whether size is one of the selectable page sizes.
func ValidSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// NewFrame computes a frame for the given total, clamping page into range
// and falling back to DefaultPageSize for unknown sizes. An empty list
// yields a single empty page rather than zero pages, so the client always
// has a current page to render.
func NewFrame(page, size, totalItems int) Frame {
	if !ValidSize(size) {
		size = DefaultPageSize
	}
	if totalItems < 0 {
		totalItems = 0
	}

	pageCount := (totalItems + size - 1) / size
	if pageCount < 1 {
		pageCount = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	return Frame{Page: page, PageSize: size, PageCount: pageCount, TotalItems: totalItems}
}

// Recompute revalidates the frame against a new total. Deleting the last
// items of the last page lands on the new last page instead of an empty one.
func (f Frame) Recompute(totalItems int) Frame {
	return NewFrame(f.Page, f.PageSize, totalItems)
}

// Resize switches page size, keeping the first item of the current page
// visible in the new frame.
func (f Frame) Resize(size int) Frame {
	if !ValidSize(size) {
		return f
	}
	firstIndex := (f.Page - 1) * f.PageSize
	newPage := firstIndex/size + 1
	return NewFrame(newPage, size, f.TotalItems)
}

// Next advances one page; a no-op on the last page.
func (f Frame) Next() Frame {
	return NewFrame(f.Page+1, f.PageSize, f.TotalItems)
}

// Prev steps back one page; a no-op on the first page.
func (f Frame) Prev() Frame {
	return NewFrame(f.Page-1, f.PageSize, f.TotalItems)
}

// Bounds returns the half-open [start, end) index range of the current page.
func (f Frame) Bounds() (start, end int) {
	start = (f.Page - 1) * f.PageSize
	if start > f.TotalItems {
		start = f.TotalItems
	}
	end = start + f.PageSize
	if end > f.TotalItems {
		end = f.TotalItems
	}
	return start, end
}

// Slice cuts one page out of the full item list. The generic keeps call
// sites free of copy loops.
func Slice[T any](items []T, f Frame) []T {
	start, end := f.Bounds()
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
