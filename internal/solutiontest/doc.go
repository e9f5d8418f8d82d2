// Package solutiontest runs a problem driver over paired fixture files.
//
// A fixture is testdata/inN.txt with its expected output testdata/outN.txt
// beside it, anywhere under the walked root. Outputs are compared line by
// line; the first differing line is reported together with a line diff.
package solutiontest
