/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "time"

// Version of Tryoutd.
var Version string

// BuildTime contains the timestamp of when the version of Tryoutd was built.
var BuildTime string

// StartTimestamp is the time the daemon was started.
var StartTimestamp time.Time
