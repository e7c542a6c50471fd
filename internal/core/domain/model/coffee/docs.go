// Package coffee provides the Coffee aggregate: a named menu product with an exact price.
//
// Key business rules:
//   - A coffee has a valid identifier, a non-blank name, and a non-negative price
//   - Prices are kernel.Money values; the menu never stores floating point amounts
//   - A coffee is immutable once created; orders reference it by identity
package coffee
