// Package index builds circuits applying one operation out of a table,
// selected by the computational-basis value of an index register. The
// synthesis strategy is pluggable: the default strategy multi-controls
// every operation on the full index register, while the unary iteration
// strategy walks the table with a work-qubit cascade so each operation
// needs only a single control (arXiv:1805.03662).
package index
