// Package solution implements Solution (spec §3/§4.C): a collection of
// routes plus the set of not-yet-assigned containers. Solution.Apply
// dispatches a move.Move to the route operations it requires and
// recomputes only the affected routes' cached cost — cost invalidation
// never touches a route that the move didn't modify.
package solution
