// Package kernel provides the shared domain primitives of the waiter service.
//
// The package includes:
//   - UUID: identifier value object for coffees and orders
//   - Currency: ISO 4217 currency with its number of minor digits
//   - Money: exact amount of minor units (cents) in a currency; no floating point anywhere
//   - MoneyCodec: mapping between Money and a nullable integer column of minor units
//
// Money keeps arithmetic exact: amounts are int64 minor units, Add and Multiply
// report overflow and currency mismatch instead of rounding, and decimal rendering
// goes through shopspring/decimal with the currency's exponent.
package kernel
