// Package product provides the Product aggregate root: a supplier's catalog
// entry with a per-unit price, a stock level, and an availability flag.
//
// Stock is consumed when an order is placed and restored when the order is
// cancelled. A product can be ordered only while it is listed and has stock
// remaining.
package product
