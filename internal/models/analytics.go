// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package models

import "time"

// NamedCount is the aggregate unit returned by every upstream analytics
// endpoint (authors/age, authors/gender, countries, source types).
type NamedCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SentimentPoint is one time bucket of the sentiment-over-time aggregate.
type SentimentPoint struct {
	Date     time.Time `json:"date"`
	Positive int       `json:"positive"`
	Negative int       `json:"negative"`
	Neutral  int       `json:"neutral"`
}
