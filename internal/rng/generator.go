package rng

import "errors"

// NewSource returns a generator for one draw run: seed-keyed when seed is
// non-nil, entropy-keyed otherwise.
func NewSource(seed *int64) (Source, error) {
	if seed != nil {
		return NewSeededCSPRNG(*seed), nil
	}
	return NewCSPRNG()
}

// Int64n returns a uniform integer in [0, n) drawn from src.
//
// Plain modulo reduction skews low values when n does not divide 2^64, so
// words below 2^64 mod n are rejected and redrawn. The surviving range is an
// exact multiple of n and reduces without bias.
func Int64n(src Source, n int64) (int64, error) {
	if n <= 0 {
		return 0, errors.New("rng: n must be > 0")
	}
	un := uint64(n)
	thresh := -un % un // 2^64 mod n
	for {
		v, err := src.Uint64()
		if err != nil {
			return 0, err
		}
		if v >= thresh {
			return int64(v % un), nil
		}
	}
}
