// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !linux && !darwin

package main

import (
	"os"
	"time"
)

// fileTime returns the last modification time of the named file.
// Access times are not available portably and fall back to the
// modification time.
func fileTime(path string, _ bool) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}
