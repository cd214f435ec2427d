package reconcile

// Lane is the output collection a primary record (and its image rows) is routed to.
type Lane string

const (
	// LaneUpdated holds records that were fully processed.
	LaneUpdated Lane = "updated"
	// LaneSkipped holds records with a disqualifying condition (no cost, no weight).
	LaneSkipped Lane = "skipped"
	// LaneNoMarkup holds records whose category has no markup.
	LaneNoMarkup Lane = "no_markup"
)

// Lanes lists every lane in reporting order.
var Lanes = []Lane{LaneUpdated, LaneSkipped, LaneNoMarkup}

// Classify returns the lane for a record. Skipped has priority over no-markup.
func Classify(skipped, noMarkup bool) Lane {
	switch {
	case skipped:
		return LaneSkipped
	case noMarkup:
		return LaneNoMarkup
	default:
		return LaneUpdated
	}
}

// Counter names a running tally kept during a run.
type Counter string

const (
	// CounterSkipped counts disqualifying conditions hit. A record failing both the cost
	// and the weight check is counted twice but routed once.
	CounterSkipped Counter = "skipped"
	// CounterNoMarkup counts records whose category resolved to no markup, in any lane.
	CounterNoMarkup Counter = "no_markup"
	// CounterUpdated counts records routed to the updated lane.
	CounterUpdated Counter = "updated"
	// CounterNoAttributeData counts records with no attribute table match.
	CounterNoAttributeData Counter = "no_attribute_data"
)

// Summary provides aggregate statistics for a run.
type Summary struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id,omitempty"`

	// Records is the number of primary records processed.
	Records int `json:"records"`

	// Skipped counts disqualifying conditions hit.
	Skipped int `json:"skipped"`

	// NoMarkup counts records without a resolvable markup.
	NoMarkup int `json:"no_markup"`

	// Updated counts records routed to the updated lane.
	Updated int `json:"updated"`

	// NoAttributeData counts records without attribute data.
	NoAttributeData int `json:"no_attribute_data"`

	// Lanes holds the number of rows (primary and image rows) written per lane.
	Lanes map[Lane]int `json:"lanes"`
}
