// Package commands contains the write use cases of the waiter service.
// Every command is a validated value built by its constructor; its handler opens a unit
// of work, applies the change and commits, or delegates to services.OrderService for
// the order lifecycle.
package commands
