// Package validation provides field-level request validation with
// machine-readable error codes. Create and update handlers validate
// their inputs here before touching any collection, so transports can
// map validation failures to a 400 while business-logic failures (not
// found, unavailable) keep their own codes.
package validation
