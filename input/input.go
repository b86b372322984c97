package input

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/trashroute/vrptrash/catalog"
	"github.com/trashroute/vrptrash/construct"
	"github.com/trashroute/vrptrash/route"
)

// Record is one parsed container or other-location line before internal
// ids are assigned (spec §6: id, x, y, demand, open, close, service,
// kind_tag).
type Record struct {
	ID      string
	X, Y    float64
	Demand  float64
	Open    float64
	Close   float64
	Service float64
	Kind    catalog.Kind
}

// LoadContainers parses a `<base>.containers.txt` file. Every record's
// Kind is Pickup, matching original_source/new/trashnode.h's ntype==2
// (demand is always positive on this file, per
// original_source/baseTrash/basevehicle.cpp's pickup-only usage).
func LoadContainers(path string) ([]Record, error) {
	return loadRecords(path, catalog.Pickup)
}

// LoadOtherLocs parses a `<base>.otherlocs.txt` file, containing both
// depots and dumps; the kind_tag column disambiguates them (ntype==0 for
// depot, ntype==1 for dump per trashnode.h).
func LoadOtherLocs(path string) ([]Record, error) {
	return loadRecords(path, -1)
}

// loadRecords parses lines of the shared 8-column format. When
// forceKind is non-negative every record is assigned that kind and the
// kind_tag column's value is ignored (the column itself is still
// required); otherwise the kind_tag column
// (0=depot, 1=dump, 2=pickup) selects it.
func loadRecords(path string, forceKind catalog.Kind) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: opening %s: %w", path, err)
	}
	defer f.Close()

	var out []Record
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields, ok := splitDataLine(scanner.Text())
		if !ok {
			continue
		}
		if len(fields) != 8 {
			return nil, fmt.Errorf("%w: %s:%d: expected 8 fields, got %d", ErrMalformedLine, path, lineNo, len(fields))
		}

		rec, err := parseRecord(fields, forceKind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedLine, path, lineNo, err)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}
	return out, nil
}

func parseRecord(fields []string, forceKind catalog.Kind) (Record, error) {
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Record{}, err
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Record{}, err
	}
	demand, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Record{}, err
	}
	open, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Record{}, err
	}
	close_, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Record{}, err
	}
	service, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return Record{}, err
	}

	kind := forceKind
	if kind < 0 {
		tag, err := strconv.Atoi(fields[7])
		if err != nil {
			return Record{}, err
		}
		switch tag {
		case 0:
			kind = catalog.Depot
		case 1:
			kind = catalog.Dump
		case 2:
			kind = catalog.Pickup
		default:
			return Record{}, fmt.Errorf("unknown kind tag %d", tag)
		}
	}

	return Record{
		ID:      fields[0],
		X:       x,
		Y:       y,
		Demand:  demand,
		Open:    open,
		Close:   close_,
		Service: service,
		Kind:    kind,
	}, nil
}

// BuildCatalog assigns dense internal ids — other-locations first (so
// depots and dumps get the lowest ids, matching the convention implied
// by original_source/new/trashnode.h's depot/dump distance caches), then
// containers — and constructs the catalog.
func BuildCatalog(containers, otherlocs []Record) (*catalog.Catalog, error) {
	all := make([]Record, 0, len(containers)+len(otherlocs))
	all = append(all, otherlocs...)
	all = append(all, containers...)

	nodes := make([]catalog.Node, len(all))
	for i, rec := range all {
		if rec.Kind != catalog.Pickup && rec.Demand != 0 {
			return nil, fmt.Errorf("%w: depot/dump %q carries nonzero demand", ErrSemanticInvalid, rec.ID)
		}
		nodes[i] = catalog.Node{
			ID:       rec.ID,
			Internal: i,
			X:        rec.X,
			Y:        rec.Y,
			Kind:     rec.Kind,
			Demand:   rec.Demand,
			Window:   catalog.Window{Open: rec.Open, Close: rec.Close},
			Service:  rec.Service,
		}
	}

	cat, err := catalog.NewCatalog(nodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSemanticInvalid, err)
	}
	return cat, nil
}

// LoadVehicles parses a `<base>.vehicles.txt` file: vehicle id,
// capacity, start-depot id, dump id, end-depot id, shift open, shift
// close, w1, w2, w3. Depot/dump ids are resolved against cat.
func LoadVehicles(path string, cat *catalog.Catalog) ([]construct.VehicleSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: opening %s: %w", path, err)
	}
	defer f.Close()

	var out []construct.VehicleSpec
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields, ok := splitDataLine(scanner.Text())
		if !ok {
			continue
		}
		if len(fields) != 10 {
			return nil, fmt.Errorf("%w: %s:%d: expected 10 fields, got %d", ErrMalformedLine, path, lineNo, len(fields))
		}

		spec, err := parseVehicle(fields, cat)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		out = append(out, spec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}
	return out, nil
}

func parseVehicle(fields []string, cat *catalog.Catalog) (construct.VehicleSpec, error) {
	capacity, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return construct.VehicleSpec{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if capacity <= 0 {
		return construct.VehicleSpec{}, fmt.Errorf("%w: capacity must be positive, got %v", ErrSemanticInvalid, capacity)
	}

	start, ok := cat.Lookup(fields[2])
	if !ok {
		return construct.VehicleSpec{}, fmt.Errorf("%w: unknown start depot %q", ErrSemanticInvalid, fields[2])
	}
	dump, ok := cat.Lookup(fields[3])
	if !ok {
		return construct.VehicleSpec{}, fmt.Errorf("%w: unknown dump %q", ErrSemanticInvalid, fields[3])
	}
	end, ok := cat.Lookup(fields[4])
	if !ok {
		return construct.VehicleSpec{}, fmt.Errorf("%w: unknown end depot %q", ErrSemanticInvalid, fields[4])
	}

	open, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return construct.VehicleSpec{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	close_, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return construct.VehicleSpec{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	w1, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return construct.VehicleSpec{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	w2, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return construct.VehicleSpec{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	w3, err := strconv.ParseFloat(fields[9], 64)
	if err != nil {
		return construct.VehicleSpec{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return construct.VehicleSpec{
		ID:         fields[0],
		Capacity:   capacity,
		StartDepot: start,
		Dump:       dump,
		EndDepot:   end,
		ShiftOpen:  open,
		ShiftClose: close_,
		Weights:    route.Weights{Travel: w1, Capacity: w2, Window: w3},
	}, nil
}

// LoadMatrix parses a `<base>.dmatrix-time.txt` file: from_id, to_id,
// duration. Unknown pairs are left unreachable (spec §6 "unknown pairs
// are treated as unreachable"); pairs naming an unknown node are a
// semantic error since the node set is already fixed by BuildCatalog.
func LoadMatrix(path string, cat *catalog.Catalog) (*catalog.TravelTimeMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: opening %s: %w", path, err)
	}
	defer f.Close()

	mat, err := catalog.NewTravelTimeMatrix(cat.N())
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields, ok := splitDataLine(scanner.Text())
		if !ok {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %s:%d: expected 3 fields, got %d", ErrMalformedLine, path, lineNo, len(fields))
		}

		from, ok := cat.Lookup(fields[0])
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: unknown node %q", ErrSemanticInvalid, path, lineNo, fields[0])
		}
		to, ok := cat.Lookup(fields[1])
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: unknown node %q", ErrSemanticInvalid, path, lineNo, fields[1])
		}
		duration, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedLine, path, lineNo, err)
		}

		if err := mat.Set(from, to, duration); err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrSemanticInvalid, path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}
	return mat, nil
}

// splitDataLine trims whitespace, drops blank lines and `#` comments,
// and splits on arbitrary whitespace.
func splitDataLine(line string) ([]string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}
	return strings.Fields(trimmed), true
}
