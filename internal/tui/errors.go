package tui

import "errors"

// ErrUserQuit is returned by Run when the user leaves the program without
// submitting the form.
var ErrUserQuit = errors.New("user quit")
