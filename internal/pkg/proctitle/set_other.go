//go:build !linux

package proctitle

import "errors"

// Set is a no-op outside Linux.
func Set(title string) error {
	if normalize(title) == "" {
		return errors.New("proctitle: empty title")
	}
	return nil
}
