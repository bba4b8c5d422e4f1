// Package compose implements the register-composition engine: register
// maps binding a box's qubits to a destination circuit, register bundles
// naming a box's I/O surface by role, and the RegisterBox abstraction with
// its controlled and powered liftings.
package compose
