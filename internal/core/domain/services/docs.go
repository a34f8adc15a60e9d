// Package services provides domain services that implement business logic
// spanning multiple aggregates.
//
// The package includes:
//   - EtaEstimator: converts straight-line distances between coordinates into
//     coarse delivery time estimates at an assumed travel speed
package services
