// Package qompose is a library for composing quantum circuits out of
// reusable, register-aware building blocks.
//
// A RegisterBox owns a circuit fragment together with a named register
// layout; boxes are wired into larger circuits through declarative
// register-to-register maps, lifted to controlled or powered forms, and
// combined into select-one-of-N indexed operations. Two indexing methods
// are provided: a default one paying a full multi-control per index, and
// a unary-iteration ladder amortizing the control cost across adjacent
// indices. These are the primitives behind LCU select oracles, QROMs and
// qubitized walk operators.
package qompose

import "github.com/blang/semver/v4"

// Version of the library
var Version = semver.MustParse("0.1.0")
