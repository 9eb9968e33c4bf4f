// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jvminit

import (
	"errors"
	"fmt"
)

// ErrVersionInvalid is returned if a version tag is not a known native
// interface version.
var ErrVersionInvalid = errors.New("unknown interface version")

// NullOptStringError is returned by [ArgsBuilder.Build] if an option string
// contains an embedded null byte and so cannot be encoded as a null
// terminated buffer. Opt is the original offending option string.
type NullOptStringError struct {
	Opt string
}

// Error implements the [error] interface.
func (e *NullOptStringError) Error() string {
	return fmt.Sprintf("internal null byte in option: %q", e.Opt)
}

// Is implements the [errors.Is] interface.
func (*NullOptStringError) Is(other error) bool {
	_, ok := other.(*NullOptStringError)
	return ok
}
