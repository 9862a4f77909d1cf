// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

// Package watchdog provides an optional heartbeat hook invoked once per
// sponge-rate permutation. It is a correctness-neutral, injectable
// collaborator: nothing in the sponge's output depends on whether a
// watchdog is registered, only on how many times and when it is called.
package watchdog

// hook is called by Pet when non-nil. Package-level state mirrors the
// teacher's own use of a package-level var for configuration-like state
// (radix51's useBMI2); there is exactly one process-wide watchdog, set up
// by the hosting program before any sponge operation runs.
var hook func()

// Register installs f as the watchdog hook. Passing nil disables it.
// Register is not safe to call concurrently with sponge operations.
func Register(f func()) {
	hook = f
}

// Pet invokes the registered hook, if any. It is called once per
// permutation triggered by Sponge.Advance.
func Pet() {
	if hook != nil {
		hook()
	}
}
