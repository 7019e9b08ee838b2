// Package options provides configurable settings for geometric operations in the geom2d library.
//
// This package defines a functional options pattern, allowing users to modify the behavior
// of various geometric functions without changing their signatures. The options
// are applied using functional parameters that modify a GeometryOptions struct.
//
// # Key Features
//
//   - Floating-Point Precision Control: the Epsilon parameter allows users to define
//     a tolerance for numerical comparisons, mitigating precision issues in floating-point arithmetic.
//   - Border Control: BorderOffset and BorderRect let a caller of VoronoiTessellate choose how
//     the clipping rectangle is derived without overloading the function signature.
//   - Functional Options Pattern: the GeometryOptionsFunc type provides a way to apply
//     optional configurations without requiring additional parameters in function signatures.
//
// These options are applied using ApplyGeometryOptions, which takes a default GeometryOptions
// struct and modifies it based on the provided options.
package options
