// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jni

/*
#include <stdint.h>
#include <stdlib.h>

// Layout expected by the VM bootstrap API. Defined here so the package is
// self contained and does not need the VM vendor's headers at build time.

typedef struct VMOption {
	char *optionString; // null terminated encoded option text
	void *extraInfo;    // reserved by the bootstrap API, always NULL
} VMOption;

typedef struct VMInitArgs {
	int32_t   version;
	intptr_t  nOptions;
	VMOption *options;
	int32_t   ignoreUnrecognized;
} VMInitArgs;
*/
import "C"

import (
	"unsafe"
)

// Alloc and free of encoded option strings go through these hooks so tests
// can count the pairing.
var (
	allocCString = cString
	freeCString  = cFree
)

func cString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

func cFree(p unsafe.Pointer) {
	C.free(p)
}

// Record is a finalized VM bootstrap argument record backed entirely by C
// heap memory.
//
// The record struct, the option descriptor array and each encoded option
// string are allocated once by [NewRecord] and never moved or resized, so
// the address returned by [Record.Pointer] stays valid until
// [Record.Release]. No Go pointer is ever stored in any of them.
type Record struct {
	args     *C.VMInitArgs
	options  *C.VMOption
	nOptions int
	released bool
}

// NewRecord encodes the given option strings and assembles the native
// record with the given version tag and ignore flag.
//
// The option strings must not contain null bytes. With no options the
// descriptor array pointer is left NULL and the count is 0.
func NewRecord(version int32, ignoreUnrecognized bool, options []string) *Record {
	r := &Record{
		nOptions: len(options),
	}

	if len(options) > 0 {
		size := C.size_t(C.sizeof_VMOption)
		r.options = (*C.VMOption)(C.calloc(C.size_t(len(options)), size))

		for idx, opt := range options {
			o := r.optionAt(idx)
			o.optionString = (*C.char)(allocCString(opt))
			o.extraInfo = nil
		}
	}

	ignore := C.int32_t(0)
	if ignoreUnrecognized {
		ignore = 1
	}

	r.args = (*C.VMInitArgs)(C.calloc(1, C.size_t(C.sizeof_VMInitArgs)))
	r.args.version = C.int32_t(version)
	r.args.nOptions = C.intptr_t(len(options))
	r.args.options = r.options
	r.args.ignoreUnrecognized = ignore

	return r
}

func (r *Record) optionAt(idx int) *C.VMOption {
	ptr := unsafe.Add(unsafe.Pointer(r.options), uintptr(idx)*C.sizeof_VMOption)

	return (*C.VMOption)(ptr)
}

// Pointer returns the raw pointer to the native record as handed to the
// bootstrap call. It is valid until [Record.Release].
func (r *Record) Pointer() unsafe.Pointer {
	return unsafe.Pointer(r.args)
}

// Version returns the version field of the native record.
func (r *Record) Version() int32 {
	return int32(r.args.version)
}

// IgnoreUnrecognized returns the ignore flag of the native record.
func (r *Record) IgnoreUnrecognized() bool {
	return r.args.ignoreUnrecognized != 0
}

// NumOptions returns the option count of the native record.
func (r *Record) NumOptions() int {
	return r.nOptions
}

// OptionString decodes the encoded option text at the given index back into
// a Go string.
func (r *Record) OptionString(idx int) string {
	return C.GoString(r.optionAt(idx).optionString)
}

// OptionExtra returns the auxiliary pointer slot at the given index. The
// bootstrap API reserves it and this package always leaves it NULL.
func (r *Record) OptionExtra(idx int) unsafe.Pointer {
	return r.optionAt(idx).extraInfo
}

// Release frees every encoded option string, the descriptor array and the
// record itself. Only the first call frees. Further calls are no-ops.
func (r *Record) Release() {
	if r.released {
		return
	}

	r.released = true

	for idx := range r.nOptions {
		o := r.optionAt(idx)
		freeCString(unsafe.Pointer(o.optionString))
		o.optionString = nil
	}

	if r.options != nil {
		C.free(unsafe.Pointer(r.options))
		r.options = nil
	}

	C.free(unsafe.Pointer(r.args))
	r.args = nil
}
