package main

import "testing"

func TestFormatBoard(t *testing.T) {
	grid := [][]int{{2, 0}, {0, 2048}}
	want := "    2     .\n    .  2048\n"
	if got := formatBoard(grid); got != want {
		t.Errorf("formatBoard(%v) = %q, want %q", grid, got, want)
	}
}
