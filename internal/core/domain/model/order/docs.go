// Package order provides the Order aggregate root for the marketplace.
//
// The package includes:
//   - Order: the aggregate root owning line items, the fixed total amount,
//     the status state machine, and the delivery-agent assignment
//   - Item: a line-item value object with the unit price snapshotted at
//     order creation
//   - Status: the order state machine
//
// Key business rules:
//   - totalAmount is the sum of line totals, computed once at creation;
//     later product price changes never affect a placed order
//   - status follows pending -> confirmed -> ready_for_pickup ->
//     out_for_delivery -> delivered, with cancelled reachable from any
//     non-terminal state and failed from out_for_delivery
//   - an order is claimable by exactly one agent, and only while it is in
//     ready_for_pickup with no agent assigned
package order
