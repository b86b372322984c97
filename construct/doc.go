// Package construct implements the seeded greedy initial-solution
// builder (spec §4.G): one vehicle at a time, in shift-open order,
// repeatedly appending the feasible pickup with the smallest screened
// insertion delta at the route's current end, falling back to an
// interior dump visit when nothing fits, and leaving unplaceable
// containers in the solution's unassigned bucket.
package construct
