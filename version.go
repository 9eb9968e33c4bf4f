// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jvminit

// Supported native interface versions. The values are the integer constants
// the bootstrap API defines for each revision and are carried into the
// version field of the native record as is.
const (
	// V1 is the baseline interface version. It is the default of a new
	// [ArgsBuilder].
	V1 Version = 0x00010001
	// V2 adds the extended function table of the 1.2 release.
	V2 Version = 0x00010002
	// V4 corresponds to the 1.4 release.
	V4 Version = 0x00010004
	// V6 corresponds to the 1.6 release.
	V6 Version = 0x00010006
	// V8 corresponds to the 1.8 release.
	V8 Version = 0x00010008
)

// Version represents a native interface version tag.
//
// The subsystem only carries the tag through to the bootstrap call. It does
// not interpret it.
type Version int32

func (v Version) isKnown() bool {
	switch v {
	case V1, V2, V4, V6, V8:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (v Version) String() string {
	switch v {
	case V1:
		return "1.1"
	case V2:
		return "1.2"
	case V4:
		return "1.4"
	case V6:
		return "1.6"
	case V8:
		return "1.8"
	default:
		return ""
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (v Version) MarshalText() ([]byte, error) {
	s := v.String()
	if s == "" {
		return nil, ErrVersionInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Version) UnmarshalText(text []byte) error {
	switch string(text) {
	case "1.1":
		*v = V1
	case "1.2":
		*v = V2
	case "1.4":
		*v = V4
	case "1.6":
		*v = V6
	case "1.8":
		*v = V8
	default:
		return ErrVersionInvalid
	}

	return nil
}
