// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Tree consistency checks and the benchmark tool report their
// failures as one of these constants, so callers can compare errors
// directly or test their class with the IsErr… functions.
//
// A "PANIC" logger channel is also kept here for the final message
// of a program that cannot continue.
package fault
