// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jni owns the ABI facing side of the VM bootstrap configuration: the
// native record layout, the C heap allocation of the encoded option strings
// and the deterministic release of all of it.
//
// Option strings handed to [NewRecord] must already be validated. The public
// API in the root package performs the null byte check and owns the error
// contract.
package jni
