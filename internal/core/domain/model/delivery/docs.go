// Package delivery provides the Delivery aggregate root: a single courier run
// created when a delivery agent claims a ready order.
//
// A delivery progresses assigned -> picked_up -> out_for_delivery ->
// delivered, with failed reachable from any active status. The delivered
// transition stamps the actual delivery time and stores the courier's proof
// reference; the failed transition records the courier's reason.
package delivery
