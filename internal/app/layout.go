package app

import "cave-ca/internal/core"

// windowSize is the logical window size: the map area plus the HUD panel on
// its right.
func windowSize(screen core.Size, hudWidth int) (int, int) {
	if hudWidth < 0 {
		hudWidth = 0
	}
	return screen.W + hudWidth, screen.H
}
