// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordtree/command/treebench/mocks"
	"github.com/bitmark-inc/ordtree/fault"
)

func testConfiguration(verify bool) *Configuration {
	return &Configuration{
		NodeCounts: []int{3},
		Iterations: 2,
		Engines:    []string{engineAVL},
		Order:      orderSequential,
		Seed:       1,
		Verify:     verify,
	}
}

func newMockRunner(t *testing.T, config *Configuration) (*runner, *mocks.MockContainer, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mockContainer := mocks.NewMockContainer(ctl)

	r := newRunner(config, &bytes.Buffer{}, false)
	r.newContainer = func(engine string) Container {
		return mockContainer
	}
	return r, mockContainer, ctl
}

func TestMeasureSearch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, mc, ctl := newMockRunner(t, testConfiguration(true))
	defer ctl.Finish()

	keys := makeKeys(3, orderSequential, 1)
	mc.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(0), false).Times(6)
	mc.EXPECT().Check().Return(nil).Times(2)
	for _, k := range keys {
		mc.EXPECT().Find(k).Return(k, true).Times(2)
	}

	result, err := r.measure(benchSearch, engineAVL, keys)
	assert.Nil(t, err, "wrong measure error")
	assert.LessOrEqual(t, int64(result.minimum), int64(result.average), "minimum above average")
	assert.LessOrEqual(t, int64(result.average), int64(result.maximum), "average above maximum")
}

func TestMeasureSearchMissingKey(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, mc, ctl := newMockRunner(t, testConfiguration(false))
	defer ctl.Finish()

	keys := makeKeys(3, orderSequential, 1)
	mc.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(0), false).Times(3)
	mc.EXPECT().Find(gomock.Any()).Return(uint64(0), false).Times(3)

	_, err := r.measure(benchSearch, engineAVL, keys)
	assert.Equal(t, fault.ErrVerifyFailed, err, "wrong measure error")
}

func TestMeasureInsertDuplicate(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, mc, ctl := newMockRunner(t, testConfiguration(false))
	defer ctl.Finish()

	keys := []uint64{7, 7}
	gomock.InOrder(
		mc.EXPECT().Insert(uint64(7), uint64(7)).Return(uint64(0), false),
		mc.EXPECT().Insert(uint64(7), uint64(7)).Return(uint64(7), true),
	)

	_, err := r.measure(benchInsert, engineAVL, keys)
	assert.Equal(t, fault.ErrVerifyFailed, err, "wrong measure error")
}

func TestMeasureInsertCheckFails(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, mc, ctl := newMockRunner(t, testConfiguration(true))
	defer ctl.Finish()

	keys := makeKeys(3, orderSequential, 1)
	mc.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(0), false).Times(3)
	mc.EXPECT().Check().Return(fault.ErrRedRoot).Times(1)

	_, err := r.measure(benchInsert, engineAVL, keys)
	assert.Equal(t, fault.ErrRedRoot, err, "wrong measure error")
}

func TestMeasureDelete(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, mc, ctl := newMockRunner(t, testConfiguration(true))
	defer ctl.Finish()

	keys := makeKeys(3, orderSequential, 1)
	mc.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(0), false).Times(6)
	for _, k := range keys {
		mc.EXPECT().Remove(k).Return(k, k, true).Times(2)
	}
	mc.EXPECT().Count().Return(0).Times(2)
	mc.EXPECT().Check().Return(nil).Times(4)

	_, err := r.measure(benchDelete, engineAVL, keys)
	assert.Nil(t, err, "wrong measure error")
}

func TestMeasureDeleteLeavesNodes(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r, mc, ctl := newMockRunner(t, testConfiguration(false))
	defer ctl.Finish()

	keys := makeKeys(3, orderSequential, 1)
	mc.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(0), false).Times(3)
	for _, k := range keys {
		mc.EXPECT().Remove(k).Return(k, k, true)
	}
	mc.EXPECT().Count().Return(1).AnyTimes()

	_, err := r.measure(benchDelete, engineAVL, keys)
	assert.Equal(t, fault.ErrVerifyFailed, err, "wrong measure error")
}

func TestRunBothEngines(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	config := &Configuration{
		NodeCounts: []int{10, 200},
		Iterations: 3,
		Engines:    []string{engineAVL, engineRedBlack},
		Order:      orderRandom,
		Seed:       42,
		Verify:     true,
	}
	out := &bytes.Buffer{}
	r := newRunner(config, out, false)

	err := r.run()
	assert.Nil(t, err, "wrong run error")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, 2*3*2, len(lines), "result lines")
	assert.True(t, strings.HasPrefix(lines[0], "search  avl"), "first line: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "search  redblack"), "second line: %q", lines[1])
	assert.Contains(t, lines[len(lines)-1], "200 nodes", "last line")
}

func TestMakeKeys(t *testing.T) {
	sequential := makeKeys(100, orderSequential, 1)
	for i, k := range sequential {
		assert.Equal(t, uint64(i), k, "sequential key %d", i)
	}

	random := makeKeys(100, orderRandom, 1)
	assert.Equal(t, random, makeKeys(100, orderRandom, 1), "same seed differs")
	assert.NotEqual(t, random, makeKeys(100, orderRandom, 2), "different seed matches")
	assert.NotEqual(t, sequential, random, "random is sequential")

	sorted := append([]uint64{}, random...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	assert.Equal(t, sequential, sorted, "random is not a permutation")
}

func TestBenchmarkNames(t *testing.T) {
	assert.Equal(t, "search", benchSearch.String())
	assert.Equal(t, "insert", benchInsert.String())
	assert.Equal(t, "delete", benchDelete.String())
	assert.Equal(t, "unknown", benchmark(99).String())
}
