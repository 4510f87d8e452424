//go:build gocv

package display

import (
	"fmt"
	"image"
	"log"

	"gocv.io/x/gocv"
)

// Available reports whether Show can open a window.
const Available = true

// Show opens a window titled title with img and blocks until a key is
// pressed.
func Show(title string, img image.Image) (err error) {
	defer func() {
		if r := recover(); r != nil {
			// gocv panics when no display server is reachable.
			err = fmt.Errorf("display: %v", r)
		}
	}()

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("display: converting image: %w", err)
	}
	defer mat.Close()

	window := gocv.NewWindow(title)
	defer window.Close()

	log.Printf("Displaying %dx%d image in window %q.", mat.Cols(), mat.Rows(), title)
	window.IMShow(mat)
	window.WaitKey(0)
	return nil
}
