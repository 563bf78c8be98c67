// SPDX-License-Identifier: MIT

// Package parser reads expression documents into expr values.
//
// A node is either a matrix (a 2-D number array) or an operator object:
//
//	{"operator": "*", "operands": [[[1, 2]], {"operator": "T", "operands": [[[3, 4]]]}]}
//
// Operators are "+", "*", "-" (negate) and "T" (transpose). The same shape
// is accepted as YAML when the file name ends in .yaml or .yml. Every failure
// is a *ParseError naming the offending node path.
package parser
