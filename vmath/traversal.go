package vmath

import (
	"math"
)

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every unit grid cell intersected by the line from a to b
// Cell (x, y) covers [x, x+1) × [y, y+1); callback returning false stops the walk
// Guaranteed to terminate by checking target bounds before stepping
func Traverse(a, b Vec2, callback func(x, y int) bool) {
	ix, iy := int(math.Floor(a.X)), int(math.Floor(a.Y))
	targetX, targetY := int(math.Floor(b.X)), int(math.Floor(b.Y))

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// tMax: parametric distance to the first cell boundary, tDelta: per-cell step
	var tMaxX, tMaxY, tDeltaX, tDeltaY float64
	if dx == 0 {
		tMaxX = math.Inf(1)
	} else {
		tDeltaX = 1 / dx
		fracX := a.X - math.Floor(a.X)
		if stepX > 0 {
			tMaxX = (1 - fracX) * tDeltaX
		} else {
			tMaxX = fracX * tDeltaX
		}
	}

	if dy == 0 {
		tMaxY = math.Inf(1)
	} else {
		tDeltaY = 1 / dy
		fracY := a.Y - math.Floor(a.Y)
		if stepY > 0 {
			tMaxY = (1 - fracY) * tDeltaY
		} else {
			tMaxY = fracY * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	// Loop until both indices match targets
	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				// Y is done, forced to step X
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step (tMaxX == tMaxY)
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}
