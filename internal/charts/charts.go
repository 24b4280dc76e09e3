// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package charts reshapes upstream aggregates into the series/label arrays
// the dashboard's chart library consumes. Reshaping only, no computation:
// empty input becomes an explicit no-data config, and a still-pending fetch
// becomes a skeleton config, so the client never branches on nil.
package charts

import (
	"github.com/scano-io/scanogate/internal/models"
)

// DonutConfig feeds a donut/pie chart: parallel series and label arrays.
type DonutConfig struct {
	Series  []int    `json:"series"`
	Labels  []string `json:"labels"`
	NoData  bool     `json:"no_data,omitempty"`
	Pending bool     `json:"pending,omitempty"`
}

// BarConfig feeds a horizontal bar chart: parallel categories and values.
type BarConfig struct {
	Categories []string `json:"categories"`
	Values     []int    `json:"values"`
	NoData     bool     `json:"no_data,omitempty"`
	Pending    bool     `json:"pending,omitempty"`
}

// LineSeries is one named line on a time-axis chart.
type LineSeries struct {
	Name   string `json:"name"`
	Values []int  `json:"values"`
}

// LineConfig feeds the sentiment-over-time chart: shared time axis plus one
// series per sentiment.
type LineConfig struct {
	Dates   []string     `json:"dates"`
	Series  []LineSeries `json:"series"`
	NoData  bool         `json:"no_data,omitempty"`
	Pending bool         `json:"pending,omitempty"`
}

// Donut reshapes named counts into a donut config, preserving order.
func Donut(counts []models.NamedCount) DonutConfig {
	if len(counts) == 0 {
		return DonutConfig{Series: []int{}, Labels: []string{}, NoData: true}
	}
	cfg := DonutConfig{
		Series: make([]int, len(counts)),
		Labels: make([]string, len(counts)),
	}
	for i, c := range counts {
		cfg.Series[i] = c.Value
		cfg.Labels[i] = c.Name
	}
	return cfg
}

// PendingDonut is the skeleton placeholder while a fetch is in flight.
func PendingDonut() DonutConfig {
	return DonutConfig{Series: []int{}, Labels: []string{}, Pending: true}
}

// Bar reshapes named counts into a bar config, preserving order.
func Bar(counts []models.NamedCount) BarConfig {
	if len(counts) == 0 {
		return BarConfig{Categories: []string{}, Values: []int{}, NoData: true}
	}
	cfg := BarConfig{
		Categories: make([]string, len(counts)),
		Values:     make([]int, len(counts)),
	}
	for i, c := range counts {
		cfg.Categories[i] = c.Name
		cfg.Values[i] = c.Value
	}
	return cfg
}

// PendingBar is the skeleton placeholder while a fetch is in flight.
func PendingBar() BarConfig {
	return BarConfig{Categories: []string{}, Values: []int{}, Pending: true}
}

// lineDateFormat matches the dashboard's time axis labels.
const lineDateFormat = "2006-01-02"

// Line reshapes sentiment buckets into a three-series line config.
func Line(points []models.SentimentPoint) LineConfig {
	if len(points) == 0 {
		return LineConfig{Dates: []string{}, Series: []LineSeries{}, NoData: true}
	}

	cfg := LineConfig{
		Dates: make([]string, len(points)),
		Series: []LineSeries{
			{Name: models.SentimentPositive, Values: make([]int, len(points))},
			{Name: models.SentimentNegative, Values: make([]int, len(points))},
			{Name: models.SentimentNeutral, Values: make([]int, len(points))},
		},
	}
	for i, p := range points {
		cfg.Dates[i] = p.Date.UTC().Format(lineDateFormat)
		cfg.Series[0].Values[i] = p.Positive
		cfg.Series[1].Values[i] = p.Negative
		cfg.Series[2].Values[i] = p.Neutral
	}
	return cfg
}

// PendingLine is the skeleton placeholder while a fetch is in flight.
func PendingLine() LineConfig {
	return LineConfig{Dates: []string{}, Series: []LineSeries{}, Pending: true}
}
