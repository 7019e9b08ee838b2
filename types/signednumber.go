package types

// SignedNumber is a generic interface representing signed numeric types supported by this package.
// This interface allows functions and structs to operate generically on various numeric types,
// including integer and floating-point types, while restricting to signed values only.
//
// Supported types:
//   - int
//   - int32
//   - int64
//   - float32
//   - float64
//
// By using SignedNumber, functions can handle multiple numeric types without needing to be rewritten
// for each specific type, enabling flexible and type-safe operations across different numeric data.
type SignedNumber interface {
	int | int32 | int64 | float32 | float64
}

// Float restricts a type parameter to the binary floating-point types. Algorithms that require
// a continuous domain (circumcenters, interpolation factors, Delaunay triangulation, Voronoi
// tessellation) are only meaningful over Float; the discrete integer members of SignedNumber have
// no well-defined circumcenter in general.
type Float interface {
	float32 | float64
}
