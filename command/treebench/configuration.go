// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordtree/configuration"
	"github.com/bitmark-inc/ordtree/fault"
)

// basic defaults
const (
	defaultIterations = 5
	defaultOrder      = orderSequential
	defaultSeed       = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "treebench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// key generation orders
const (
	orderSequential = "sequential"
	orderRandom     = "random"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultNodeCounts = []int{1000, 10000, 100000}
	defaultEngines    = []string{engineAVL, engineRedBlack}

	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"runner":          "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings read from the Lua configuration file
type Configuration struct {
	NodeCounts []int                `gluamapper:"node_counts" json:"node_counts"`
	Iterations int                  `gluamapper:"iterations" json:"iterations"`
	Engines    []string             `gluamapper:"engines" json:"engines"`
	Order      string               `gluamapper:"order" json:"order"`
	Seed       int64                `gluamapper:"seed" json:"seed"`
	Verify     bool                 `gluamapper:"verify" json:"verify"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaultConfiguration - settings used when no file is given and
// the base that a file overrides
func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		Iterations: defaultIterations,
		Order:      defaultOrder,
		Seed:       defaultSeed,
		Verify:     false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration, an empty file name
// selects the built in defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}

		// relative log directory is taken from the configuration file's directory
		if !filepath.IsAbs(options.Logging.Directory) {
			dataDirectory, _ := filepath.Split(configurationFileName)
			options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
		}
	}

	// lists are only defaulted after parsing so that a shorter list
	// in the file replaces the default rather than overlaying it
	if 0 == len(options.NodeCounts) {
		options.NodeCounts = append([]int{}, defaultNodeCounts...)
	}
	if 0 == len(options.Engines) {
		options.Engines = append([]string{}, defaultEngines...)
	}

	if err := options.validate(); nil != err {
		return nil, err
	}
	return options, nil
}

// check values and normalise names
func (c *Configuration) validate() error {
	for _, n := range c.NodeCounts {
		if n <= 0 {
			return fault.ErrInvalidNodeCount
		}
	}
	if c.Iterations <= 0 {
		return fault.ErrInvalidIterations
	}

	for i, name := range c.Engines {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := engines[name]; !ok {
			return fault.ErrUnknownEngine
		}
		c.Engines[i] = name
	}

	c.Order = strings.ToLower(strings.TrimSpace(c.Order))
	switch c.Order {
	case orderSequential, orderRandom:
	default:
		return fault.ErrUnknownOrder
	}
	return nil
}
