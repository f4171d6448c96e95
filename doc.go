// Package depot reconstructs the history of an investment account from
// broker order confirmations.
//
// Raw orders are parsed from documents (package document), merged when several
// confirmation lines describe the same purchase (Aggregate), and collected in
// a Repository. From there a per-instrument Timeline expands the sparse order
// events onto a daily calendar, ready to be priced against an external quote
// source (package boerse) and rendered (package renderer).
package depot
