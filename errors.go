// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import "errors"

var (
	errUnknownStoreMode   = errors.New("unknown store mode, must be \"task\" or \"request\"")
	errUnknownLogLevel    = errors.New("unknown log level")
	errInvalidCapacity    = errors.New("storage capacity must not be negative")
	errFailedToReadConfig = errors.New("failed to read config file")
	errFailedToParse      = errors.New("failed to parse config")
	errStorageClosed      = errors.New("storage is closed")
	errNilProfiler        = errors.New("profiler must not be nil")
	errProfilerActive     = errors.New("profiler must be stopped before it is saved")
)
