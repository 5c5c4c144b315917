// Package chart assembles aggregate tables into renderer-neutral figures:
// a set of pre-computed bar traces, exactly one visible at a time, and
// dropdown menus whose buttons carry the visibility mask they apply.
// Switching traces is a client-side concern; no figure needs a new
// request to change what it shows.
package chart

import (
	"strconv"
)

// Trace is one bar series.
type Trace struct {
	Name    string    `json:"name"`
	Labels  []string  `json:"labels"`
	Values  []float64 `json:"values"`
	Text    []string  `json:"text"`
	Color   string    `json:"color"`
	Visible bool      `json:"visible"`
}

// Button switches the figure to the traces flagged in Visible.
type Button struct {
	Label   string `json:"label"`
	Visible []bool `json:"visible"`
}

// Target returns the index of the first trace the button shows, or -1.
func (b Button) Target() int {
	for i, v := range b.Visible {
		if v {
			return i
		}
	}
	return -1
}

// Menu is a dropdown of buttons.
type Menu struct {
	Name    string   `json:"name"`
	Buttons []Button `json:"buttons"`
	// Active is the index of the button matching the initial view.
	Active int `json:"active"`
}

// Layout carries presentation settings shared by all traces.
type Layout struct {
	Title     string `json:"title"`
	XTitle    string `json:"x_title"`
	YTitle    string `json:"y_title"`
	Height    int    `json:"height"`
	TickAngle int    `json:"tick_angle"`
}

// Figure is a chart with its traces and controls.
type Figure struct {
	ID     string  `json:"id"`
	Layout Layout  `json:"layout"`
	Traces []Trace `json:"traces"`
	Menus  []Menu  `json:"menus"`
}

// VisibleIndex returns the index of the first visible trace, or -1.
func (f Figure) VisibleIndex() int {
	for i, t := range f.Traces {
		if t.Visible {
			return i
		}
	}
	return -1
}

// mask returns a visibility mask of length n showing only index i.
func mask(n, i int) []bool {
	out := make([]bool, n)
	if i >= 0 && i < n {
		out[i] = true
	}
	return out
}

// PercentText formats a percentage the way bar labels show it, e.g. "12.5%".
func PercentText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
