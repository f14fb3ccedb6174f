// SPDX-License-Identifier: MIT

// Package routecipher is a small library and CLI for the spiral route cipher.
//
// What is a route cipher?
//
//	Plaintext is written into a rectangular grid row by row and the
//	ciphertext is read back along a fixed route. Here the route is an inward
//	spiral that starts at the top-right corner heading down and turns
//	clockwise at every corner.
//
// Everything is organized under three subpackages:
//
//	matrix/ — padded, bounds-checked character grid built from plaintext
//	spiral/ — lazy spiral traversal with an explicit Unstarted/Started/Finished lifecycle
//	cipher/ — Encoder that reads the matrix in traversal order
//
// plus the command-line front end in cmd/routecipher.
//
// Quick ASCII example (3×3, "ABCDEFGHI"):
//
//	A B C      route: C F I H G D A B E
//	D E F
//	G H I
//
//	go install github.com/katalvlaran/routecipher/cmd/routecipher@latest
package routecipher
