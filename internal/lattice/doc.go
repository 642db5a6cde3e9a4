// Package lattice builds the pin-by-pin maps of a fuel assembly lattice:
// pyramid-peaked enrichment maps, burnable absorber pin placements, and the
// material maps that make up a fuel segment.
package lattice
