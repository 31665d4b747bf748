// SPDX-License-Identifier: MIT

package sentiment

import "errors"

var (
	// ErrConfig indicates a configuration that cannot be decoded or does not
	// build a valid engine. The underlying fuzzy sentinel stays matchable:
	//
	//	errors.Is(err, sentiment.ErrConfig) && errors.Is(err, fuzzy.ErrUnknownTerm)
	ErrConfig = errors.New("sentiment: invalid configuration")

	// ErrWorkers indicates a non-positive worker count for ClassifyAll.
	ErrWorkers = errors.New("sentiment: workers must be > 0")
)
