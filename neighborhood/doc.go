// Package neighborhood generates bounded candidate move lists for the
// three move families (spec §4.E): Ins, IntraSw, InterSw. Each candidate
// passes the owning route's non-mutating delta screen and carries an
// exact savings figure computed by applying the move to cloned routes;
// nothing here mutates the Solution or its Routes.
package neighborhood
