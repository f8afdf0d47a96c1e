package hexio

// Marker is a 6-character uppercase hex prefix ("AAAA12") that opens a frame
// candidate: a 2-byte SOF plus a 1-byte message type.
type Marker string

// SOF/type marker groups, one per endpoint family (spec §4.1).
var (
	MarkersPosition     = []Marker{"AAAA12"}
	MarkersStationary   = []Marker{"AAAA11"}
	MarkersInterlocking = []Marker{"AAAA15", "AAAA16"}
	MarkersHealth       = []Marker{"AAAA17", "AAAA18", "BBBB18"}
	MarkersFault        = []Marker{"AAAA19", "BBBB19"}
)
