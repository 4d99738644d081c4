// Package seed defines the initial-state generators for the predator-prey
// simulation. A Generator binds an ordered list of raw text values to named
// parameters and renders them into the files the simulation reads at
// iteration zero. Values are never parsed or escaped: whatever text the
// caller supplies is what lands in the output.
package seed
