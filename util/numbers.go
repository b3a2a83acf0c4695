package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHashRate parses a hashes-per-second value with an optional magnitude
// suffix, e.g. "623G", "850M", or a plain "623000000000".
func ParseHashRate(rateStr string) (int64, error) {
	rateStr = strings.TrimSpace(rateStr)
	if rateStr == "" {
		return 0, fmt.Errorf("hash rate is empty")
	}

	var multiplier int64 = 1
	switch rateStr[len(rateStr)-1] {
	case 'k', 'K':
		multiplier = 1_000
	case 'm', 'M':
		multiplier = 1_000_000
	case 'g', 'G':
		multiplier = 1_000_000_000
	case 't', 'T':
		multiplier = 1_000_000_000_000
	}
	if multiplier != 1 {
		rateStr = rateStr[:len(rateStr)-1]
	}

	rate, err := strconv.ParseInt(rateStr, 0, 64)
	if err != nil {
		return 0, err
	} else if rate <= 0 {
		return 0, fmt.Errorf("hash rate must be positive, got (%d)", rate)
	}

	return rate * multiplier, nil
}
