//go:build !gocv

package display

import "image"

// Available reports whether Show can open a window.
const Available = false

// Show always fails with ErrUnavailable.
func Show(string, image.Image) error {
	return ErrUnavailable
}
