// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceFactor        = InvalidError("stored balance factor differs from sub-tree heights")
	ErrBlackHeight          = InvalidError("black heights of sub-trees differ")
	ErrInvalidIterations    = InvalidError("iterations must be positive")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidNodeCount     = InvalidError("node count must be positive")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = InvalidError("keys are not in strictly increasing order")
	ErrNodeCount            = InvalidError("node count differs from tree count")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrRedChildOfRed        = InvalidError("red node has a red child")
	ErrRedRoot              = InvalidError("root node is red")
	ErrTreeImbalance        = InvalidError("sub-tree heights differ by more than one")
	ErrUnknownEngine        = NotFoundError("unknown tree engine")
	ErrUnknownOrder         = NotFoundError("unknown key order")
	ErrVerifyFailed         = ProcessError("tree verification failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
