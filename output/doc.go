// Package output emits a solved Solution's visits as tab-separated
// lines (spec §6): one line per visit carrying route_index, sequence,
// node_id, arrival, departure, carried_load.
package output
