//go:build !gvec

package evec

import "github.com/hajimehoshi/ebiten/v2"

// Ebitengine-related additional utility methods. Use the
// gvec build tag to get rid of the Ebitengine dependency.

// Adds the vector to the translation of the given GeoM.
func (self Vector2) Translate(geom *ebiten.GeoM) {
	geom.Translate(float64(self.X), float64(self.Y))
}

// Returns the result of transforming the point with the given GeoM.
func (self Vector2) Apply(geom ebiten.GeoM) Vector2 {
	x, y := geom.Apply(float64(self.X), float64(self.Y))
	return Vector2{ X: float32(x), Y: float32(y) }
}

// Returns the current cursor position as a vector. Only
// meaningful while the game is running.
func CursorVector2() Vector2 {
	x, y := ebiten.CursorPosition()
	return Vector2{ X: float32(x), Y: float32(y) }
}
