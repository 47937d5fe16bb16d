// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

/*
Package cache provides a thread-safe, generic LRU cache with TTL support.

The recommendation engine uses it to keep recent results. Keys embed the
catalog snapshot version, so results computed against an older catalog are
never served after a reload; they simply age out.

# Usage Example

	c := cache.NewLRU[*recommend.Response](10000, 5*time.Minute)

	c.Add(key, resp)
	if resp, ok := c.Get(key); ok {
	    // use cached response
	}

	s := c.Stats() // hits, misses, evictions, size

# Thread Safety

All methods are safe for concurrent use; a single mutex guards the map and list.
*/
package cache
