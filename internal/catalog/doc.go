// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

/*
Package catalog holds the candidate items of every category together with
their feature vectors.

A catalog is loaded from a Source (JSON files, BadgerDB or the built-in seed
data) into an immutable Snapshot. Loading fits the preference encoder on the
text of every item, computes missing item vectors and validates the result;
any problem is a *LoadError and the snapshot is never served.

The active snapshot lives in a Store. Requests read it once and keep using it
for their whole lifetime, so a Reloader can swap in a new snapshot at any time
without readers observing a partially updated catalog:

	snap, err := catalog.Load(ctx, catalog.SeedSource{}, fit)
	if err != nil {
	    return err // fatal at startup
	}
	store := catalog.NewStore(snap)

	movies, ok := store.Current().Items(catalog.Movies)
*/
package catalog
