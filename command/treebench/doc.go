// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// treebench - time the AVL and red-black engines against each other
//
// for every configured node count and engine three benchmarks are
// run: search (find every key in a built tree), insert (build a tree
// from empty) and delete (remove every key from a built tree).  Each
// is repeated for the configured number of iterations and the
// average, minimum and maximum times are printed in microseconds.
//
// usage:
//
//	treebench [--verbose] [--quiet] [--config-file=FILE]
//
// without a configuration file the built in defaults are used, see
// treebench.conf.sample for the available settings.
package main
