// Package catalog defines the static question data of an assessment: the
// option alphabet, questions grouped into sections, and the result copy.
//
// A Catalog is built once at startup and never mutated afterwards.
package catalog
