// Package kernel provides core domain primitives shared across the marketplace
// domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - GeoPoint: a validated WGS84 coordinate pair with great-circle distance,
//     used by the proximity filter and the ETA estimator
//
// These primitives enforce domain invariants at construction time, are
// immutable, and are safe for concurrent use.
package kernel
