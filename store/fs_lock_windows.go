//go:build windows

/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package store

import (
	"os"
	"path/filepath"
)

// Advisory directory locking is not available on Windows.
func lockDir(root string) (*os.File, error) {
	return os.OpenFile(filepath.Join(root, lockFileName), os.O_CREATE|os.O_RDWR, 0o644)
}

func unlockDir(f *os.File) error {
	return f.Close()
}
