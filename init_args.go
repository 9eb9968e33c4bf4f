// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jvminit

import (
	"log/slog"
	"slices"
	"strings"
	"unsafe"

	"github.com/aibor/jvminit/internal/jni"
)

// reservedOptions are option names the bootstrap interface reserves for
// output redirection and shutdown hooks. They carry function pointer
// payloads that cannot be expressed here, so they are dropped on insertion.
// Only the exact literal names are reserved. Key value forms like
// "exit=true" pass through unchanged.
var reservedOptions = []string{"vfprintf", "abort", "exit"}

// ArgsBuilder accumulates the configuration for a VM bootstrap call.
//
// Create it with [NewArgsBuilder], chain the configuration calls and freeze
// the result with [ArgsBuilder.Build]. A builder must not be used anymore
// once it has been built.
type ArgsBuilder struct {
	opts               []string
	ignoreUnrecognized bool
	version            Version
}

// NewArgsBuilder returns a new [ArgsBuilder] with no options, unrecognized
// options not ignored and the baseline interface version [V1].
func NewArgsBuilder() *ArgsBuilder {
	return &ArgsBuilder{
		version: V1,
	}
}

// Option appends the given option string to the pending options.
//
// The reserved option names "vfprintf", "abort" and "exit" are silently
// dropped. Insertion order is preserved into the finalized record.
func (b *ArgsBuilder) Option(opt string) *ArgsBuilder {
	if slices.Contains(reservedOptions, opt) {
		return b
	}

	b.opts = append(b.opts, opt)

	return b
}

// Version sets the native interface version tag. The last call wins.
//
// Default: [V1].
func (b *ArgsBuilder) Version(version Version) *ArgsBuilder {
	b.version = version

	return b
}

// IgnoreUnrecognized sets whether the bootstrap call should ignore option
// strings it does not recognize instead of failing. The last call wins.
//
// Default: false.
func (b *ArgsBuilder) IgnoreUnrecognized(ignore bool) *ArgsBuilder {
	b.ignoreUnrecognized = ignore

	return b
}

// Options returns a copy of the pending option strings in insertion order.
// It does not consume the builder.
func (b *ArgsBuilder) Options() []string {
	return slices.Clone(b.opts)
}

// Build validates the pending options and freezes the configuration into an
// [InitArgs].
//
// It returns a [NullOptStringError] if any option string contains an
// embedded null byte. In that case no [InitArgs] is produced and no memory
// stays allocated. Options are validated before anything is encoded, so the
// failure path owns nothing to release.
func (b *ArgsBuilder) Build() (*InitArgs, error) {
	for _, opt := range b.opts {
		if strings.IndexByte(opt, 0) >= 0 {
			return nil, &NullOptStringError{Opt: opt}
		}
	}

	slog.Debug("building VM init args",
		slog.String("version", b.version.String()),
		slog.Int("options", len(b.opts)),
		slog.Bool("ignoreUnrecognized", b.ignoreUnrecognized),
	)

	record := jni.NewRecord(int32(b.version), b.ignoreUnrecognized, b.opts)

	return &InitArgs{record: record}, nil
}

// InitArgs is the finalized, immutable argument record for a VM bootstrap
// call.
//
// The native record, its option descriptor array and all encoded option
// strings are owned by the InitArgs and live on the C heap, so the pointer
// returned by [InitArgs.Pointer] stays valid until [InitArgs.Close] is
// called.
type InitArgs struct {
	record *jni.Record
}

// Pointer returns an opaque pointer to the native record for the bootstrap
// call.
//
// The pointer is valid only for the lifetime of the InitArgs and only for
// read access. It must not be retained after the bootstrap call returns.
func (a *InitArgs) Pointer() unsafe.Pointer {
	return a.record.Pointer()
}

// Close releases every owned encoded option buffer along with the record
// itself exactly once. Calling Close again is a no-op.
//
// It must be called only after the bootstrap call is done reading the
// record. It implements [io.Closer].
func (a *InitArgs) Close() error {
	a.record.Release()

	return nil
}
