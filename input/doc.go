// Package input parses the four plain-text, line-oriented problem files
// (spec §6, EXPANSION §4.I): containers, other locations (depots and
// dumps), vehicles, and the precomputed travel-time matrix. Field
// semantics (kind tags, demand only on pickups, dump resets load) are
// grounded on original_source/new/trashnode.h and
// original_source/baseTrash/basevehicle.cpp.
package input
