// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package rand

import (
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

func init() {
	flag.Var(&seedPreference, "test.randSeed",
		"Specify a random seed for tests, or 'launchClock' to use"+
			" the same arbitrary value in each test invocation")
}

type NamedLogger interface {
	Log(args ...interface{})
	Name() string
}

type randMode int

const (
	randModeTestClockSeed randMode = iota
	randModeProcessClockSeed
	randModeExplicitSeed
)

type randomPreference struct {
	mode randMode // default value is randModeTestClockSeed
	seed int64    // applicable only in mode != randModeTestClockSeed
}

var seedPreference randomPreference

func (i *randomPreference) String() string {
	switch i.mode {
	case randModeProcessClockSeed:
		return fmt.Sprintf("launchClock: %v", i.seed)
	case randModeExplicitSeed:
		return fmt.Sprintf("explicit seed: %v", i.seed)
	default:
		return "clock at invocation (default)"
	}
}

func (i *randomPreference) Set(value string) error {
	if value == "launchClock" {
		i.mode = randModeProcessClockSeed
		i.seed = time.Now().UTC().UnixNano()
		return nil
	}
	v, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return err
	}
	i.mode = randModeExplicitSeed
	i.seed = v
	return nil
}

// ControlledRand logs its seed against the test so a failing random workload can be replayed
// with -test.randSeed. Safe for concurrent use.
type ControlledRand struct {
	lk sync.Mutex
	r  *rand.Rand
}

func NewControlledRand(t NamedLogger) *ControlledRand {
	var seed int64
	if seedPreference.mode == randModeTestClockSeed {
		seed = time.Now().UTC().UnixNano()
	} else {
		seed = seedPreference.seed
	}
	t.Log(fmt.Sprintf("random seed %v (%s)", seed, t.Name()))

	return &ControlledRand{r: rand.New(rand.NewSource(seed))}
}

func (c *ControlledRand) Intn(n int) int {
	c.lk.Lock()
	defer c.lk.Unlock()
	return c.r.Intn(n)
}

func (c *ControlledRand) Uint64() uint64 {
	c.lk.Lock()
	defer c.lk.Unlock()
	return c.r.Uint64()
}

// AmountUpTo returns a uniformly chosen amount in [0, max].
func (c *ControlledRand) AmountUpTo(max *big.Int) *big.Int {
	c.lk.Lock()
	defer c.lk.Unlock()
	return new(big.Int).Rand(c.r, new(big.Int).Add(max, big.NewInt(1)))
}
