// Package wallpaper applies an image as the desktop background.
package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSetFailed is returned when the platform call to change the desktop
// background fails. The caller surfaces it; there is no retry.
var ErrSetFailed = errors.New("wallpaper: failed to set desktop background")

// OS interface defines the operating system specific operations.
type OS interface {
	setWallpaper(path string, persist bool) error
}

// Setter applies a local image file as the desktop wallpaper.
type Setter struct {
	os OS
}

// NewSetter returns a Setter for the current platform.
func NewSetter() *Setter {
	return &Setter{os: getOS()}
}

// Set applies the image at path as the desktop background. persist asks the
// platform to record the change in the user profile so it survives a logout
// where the platform distinguishes the two.
func (s *Setter) Set(path string, persist bool) error {
	if path == "" {
		return fmt.Errorf("%w: no image path", ErrSetFailed)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSetFailed, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: %v", ErrSetFailed, err)
	}

	if err := s.os.setWallpaper(abs, persist); err != nil {
		return fmt.Errorf("%w: %v", ErrSetFailed, err)
	}
	return nil
}
