// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build darwin

package main

import (
	"os"
	"syscall"
	"time"
)

// fileTime returns the last access or last modification time of the
// named file.
func fileTime(path string, access bool) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	if access {
		if st, ok := fi.Sys().(*syscall.Stat_t); ok {
			return time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec), nil
		}
	}
	return fi.ModTime(), nil
}
