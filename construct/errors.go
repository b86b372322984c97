package construct

import "errors"

// ErrNoVehicles is returned by Build when given an empty fleet.
var ErrNoVehicles = errors.New("construct: no vehicles supplied")
