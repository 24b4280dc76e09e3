// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package nav

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want NavState
	}{
		{"/kk/64f0c2/analytic", NavState{Active: "analytic", OpenGroup: GroupMonitoring}},
		{"/ru/64f0c2/review", NavState{Active: "review", OpenGroup: GroupMonitoring}},
		{"/kk/archive", NavState{Active: "archive", OpenGroup: GroupMonitoring}},
		{"/kk/users", NavState{Active: "users", OpenGroup: GroupSettings}},
		{"/en/tags", NavState{Active: "tags", OpenGroup: GroupSettings}},
		{"/kk/notifications", NavState{Active: "notifications", OpenGroup: GroupSettings}},
		{"/kk/subscriptions", NavState{Active: "subscriptions", OpenGroup: GroupSettings}},
		{"/kk/profile", NavState{Active: "profile"}},
		{"/kk/themes", NavState{Active: "themes"}},

		// Locale and theme-id segments never decide the view.
		{"/themes", NavState{Active: "themes"}},
		{"/kk/64f0c2abcdef/review", NavState{Active: "review", OpenGroup: GroupMonitoring}},

		// Root and empty paths land on the theme list.
		{"/", NavState{Active: "themes"}},
		{"", NavState{Active: "themes"}},
		{"///", NavState{Active: "themes"}},

		// Unknown deep links highlight nothing.
		{"/kk/whatever", NavState{}},
		{"/kk/64f0c2/unknown-view", NavState{}},
	}

	for _, tt := range tests {
		if got := Resolve(tt.path); got != tt.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.path, got, tt.want)
		}
	}
}

func TestResolveIgnoresQueryAndFragment(t *testing.T) {
	if got := Resolve("/kk/users?page=2"); got.Active != "users" {
		t.Errorf("got %+v", got)
	}
	if got := Resolve("/kk/review#top"); got.Active != "review" {
		t.Errorf("got %+v", got)
	}
	if got := Resolve("/kk/users/?page=2"); got.Active != "users" {
		t.Errorf("got %+v", got)
	}
}
