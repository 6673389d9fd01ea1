// Package scan holds the per-package results of an unsafe-code scan.
//
// A scanner (external to this module) walks every crate in a build and
// counts safe and unsafe functions, expressions, impls, traits and methods.
// [Package] stores those counts together with the metadata an output pattern
// can reference, and classifies the package into one of three [Status]
// values:
//
//   - [NoneDetectedForbidsUnsafe]: clean and #![forbid(unsafe_code)]
//   - [NoneDetectedAllowsUnsafe]: clean but unsafe is not forbidden
//   - [UnsafeDetected]: used unsafe code was found
//
// Whether unsafe code that only exists under cfg(test) counts is controlled
// by [IncludeTests].
package scan
