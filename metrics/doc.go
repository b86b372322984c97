// Package metrics instruments the tabu search driver with Prometheus
// collectors (spec §4.L, ambient stack). Package tabu imports this
// package for the Recorder interface, so building it links Prometheus and
// registers the collectors; a nil Recorder passed to tabu.Driver turns
// all recording off.
package metrics
