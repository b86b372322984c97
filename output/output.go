package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/trashroute/vrptrash/catalog"
	"github.com/trashroute/vrptrash/solution"
)

// WriteVisits emits one tab-separated line per visit across every route
// in sol, in route order then sequence order: route_index, sequence,
// node_id, arrival_time, departure_time, carried_load (spec §6).
func WriteVisits(w io.Writer, cat *catalog.Catalog, sol *solution.Solution) error {
	bw := bufio.NewWriter(w)
	for routeIdx, r := range sol.Routes() {
		for pos := 0; pos < r.Len(); pos++ {
			node := cat.Node(r.NodeAt(pos))
			_, err := fmt.Fprintf(bw, "%d\t%d\t%s\t%g\t%g\t%g\n",
				routeIdx, pos, node.ID,
				r.ArrivalAt(pos), r.DepartureAt(pos), r.CarriedLoadAt(pos))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
