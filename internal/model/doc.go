// Package model defines the parameter and value types shared by every
// InstrumentsService call.
//
// Conventions:
//   - Enumerations are closed int types; Wire() maps them to the service tokens
//     and rejects anything outside the declared set.
//   - Timestamps are sent as RFC 3339 strings in UTC.
//   - Money and quotation values carry units + nano (10^-9) parts and convert
//     exactly to decimal.Decimal.
//   - Validation failures wrap ErrInvalidArgument.
package model
