// Package testutil provides a harness for running generators against a
// temporary output directory and asserting on what they wrote.
package testutil
