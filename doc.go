// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jvminit builds the argument record a Java VM bootstrap routine
// expects across the native interface boundary.
//
// The package covers exactly the configuration seam: it accumulates option
// strings and flags in an [ArgsBuilder], validates and encodes them on
// [ArgsBuilder.Build] and freezes the result into an [InitArgs] whose raw
// pointer can be handed to the bootstrap call. It does not load, start or
// manage the VM itself.
//
// The native record, its option descriptor array and every encoded option
// string live on the C heap, so their addresses are stable for the whole
// lifetime of the [InitArgs] and no Go pointer ever crosses the boundary.
// [InitArgs.Close] releases all of it exactly once.
//
//	args, err := jvminit.NewArgsBuilder().
//		Option("-Xcheck:jni").
//		Version(jvminit.V8).
//		IgnoreUnrecognized(true).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer args.Close()
//
//	rc := C.JNI_CreateJavaVM(&jvm, &env, args.Pointer())
//
// The pointer returned by [InitArgs.Pointer] must not be retained after the
// bootstrap call returns, and [InitArgs.Close] must not run before it.
package jvminit
