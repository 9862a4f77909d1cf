// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "golang.org/x/sys/cpu"

// HasFastMultiply reports whether the host CPU exposes a wide-multiply
// instruction (BMI2 on amd64, or an equivalent) that the Go compiler can
// target for the 64-bit intermediate products mulN relies on.
//
// This generalizes the teacher's own init()-time useBMI2 probe
// (internal/radix51/fe_amd64.go in the upstream ristretto255 module),
// which selected between hand-written assembly multiply routines. This
// port's field arithmetic is portable Go with no assembly variants, so
// the flag does not gate a code path here; it is exposed for callers
// (the CLI's -v flag) that want to report which
// configuration produced a given timing, preserving the capability-probe
// idiom without pretending to dispatch to unimplemented assembly.
var HasFastMultiply bool

func init() {
	HasFastMultiply = cpu.Initialized && (cpu.X86.HasBMI2 || cpu.ARM64.HasASIMD)
}
