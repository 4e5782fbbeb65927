package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// parseLevelSpec parses a level selection like "0" or "0,2-3"
// into a set of storage indices,
// rejecting anything outside [0, numLevels).
func parseLevelSpec(spec string, numLevels int) (*bitset.BitSet, error) {
	sel := bitset.New(uint(numLevels))

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)

		loStr, hiStr, isRange := strings.Cut(part, "-")

		lo, err := parseLevelIndex(spec, loStr, numLevels)
		if err != nil {
			return nil, err
		}

		hi := lo
		if isRange {
			if hi, err = parseLevelIndex(spec, hiStr, numLevels); err != nil {
				return nil, err
			}
		}

		if hi < lo {
			return nil, fmt.Errorf("level spec %q: range %s is reversed", spec, part)
		}

		for i := lo; i <= hi; i++ {
			sel.Set(uint(i))
		}
	}

	return sel, nil
}

func parseLevelIndex(spec, s string, numLevels int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("level spec %q: %q is not a level index", spec, s)
	}

	if i < 0 || i >= numLevels {
		return 0, fmt.Errorf("level spec %q: level %d out of range [0, %d)", spec, i, numLevels)
	}

	return i, nil
}
