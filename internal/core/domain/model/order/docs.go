// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the customer, the ordered coffees and the current state
//   - State: a closed set of ranked lifecycle states
//
// Key business rules:
//   - Orders are created in the Init state with at least one coffee
//   - Items keep the order they were given in; the same coffee may appear several times
//   - State only moves forward: a transition is applied only when the new rank is higher
//   - Ranks may be skipped (Brewing -> Taken), Cancelled ranks last
//   - Orders are never deleted by the domain
//
// State ranks:
//
//	Init(0) -> Paid(1) -> Brewing(2) -> Brewed(3) -> Taken(4) -> Cancelled(5)
package order
