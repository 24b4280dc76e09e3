// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package nav resolves sidebar view-state from a dashboard path. The client
// sends its current pathname; the resolver answers which entry is active
// and which collapsible group is open. Pure table lookup on the trailing
// path segment, so the mapping is testable and the client carries no route
// conditionals.
package nav

import "strings"

// NavState is the resolved sidebar state for one path.
type NavState struct {
	Active    string `json:"active"`
	OpenGroup string `json:"open_group,omitempty"`
}

// Sidebar groups.
const (
	GroupMonitoring = "monitoring"
	GroupSettings   = "settings"
)

// entries maps a trailing path segment to its sidebar state. Segments not
// listed resolve to the empty state (nothing highlighted), which is what an
// unknown deep link should render.
var entries = map[string]NavState{
	"analytic":      {Active: "analytic", OpenGroup: GroupMonitoring},
	"review":        {Active: "review", OpenGroup: GroupMonitoring},
	"archive":       {Active: "archive", OpenGroup: GroupMonitoring},
	"themes":        {Active: "themes"},
	"users":         {Active: "users", OpenGroup: GroupSettings},
	"tags":          {Active: "tags", OpenGroup: GroupSettings},
	"notifications": {Active: "notifications", OpenGroup: GroupSettings},
	"subscriptions": {Active: "subscriptions", OpenGroup: GroupSettings},
	"profile":       {Active: "profile"},
}

// Resolve maps a dashboard pathname to its sidebar state. Locale prefixes
// (/kk/..., /ru/...) and interior theme-id segments are irrelevant: only the
// trailing segment identifies the view. A root or empty path resolves to the
// theme list, the dashboard's landing view.
func Resolve(path string) NavState {
	segment := trailingSegment(path)
	if segment == "" {
		return entries["themes"]
	}
	if state, ok := entries[segment]; ok {
		return state
	}
	return NavState{}
}

// trailingSegment returns the last non-empty path segment, ignoring any
// query or fragment the client forgot to strip.
func trailingSegment(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return ""
	}
	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}
