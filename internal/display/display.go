// Package display shows an image in a desktop window. The window needs
// OpenCV and is only compiled in with the gocv build tag.
package display

import "errors"

// ErrUnavailable is returned by Show in builds without the gocv tag.
var ErrUnavailable = errors.New("display support not compiled in (rebuild with -tags gocv)")
