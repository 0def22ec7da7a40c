package simulation

// Counters are the raw tallies of one run.
type Counters struct {
	// Originals counts every advertisement transmitted by its originator.
	Originals int `json:"originals" yaml:"originals"`

	// Repeated counts rebroadcasts a listener's budget allowed.
	Repeated int `json:"repeated" yaml:"repeated"`

	// Escaped counts advertisements repeated by at least one listener.
	Escaped int `json:"escaped" yaml:"escaped"`

	// Dropped counts heard advertisements a listener's budget refused.
	Dropped int `json:"dropped" yaml:"dropped"`

	// WouldRepeat counts rebroadcasts without any limiter.
	WouldRepeat int `json:"would_repeat" yaml:"would_repeat"`

	// WouldEscape counts advertisements heard by at least one listener.
	WouldEscape int `json:"would_escape" yaml:"would_escape"`
}

// Report is the outcome of one run, with escape amplification applied.
type Report struct {
	Run      int      `json:"run" yaml:"run"`
	Seed     uint64   `json:"seed" yaml:"seed"`
	Steps    int      `json:"steps" yaml:"steps"`
	Resets   int      `json:"resets" yaml:"resets"`
	Counters Counters `json:"counters" yaml:"counters"`

	// Repeats is Repeated plus EscapeCost packets per escaped advertisement.
	Repeats int `json:"repeats" yaml:"repeats"`

	// WouldRepeats is the counterfactual equivalent of Repeats.
	WouldRepeats int `json:"would_repeats" yaml:"would_repeats"`

	// Actual is Originals + Repeats.
	Actual int `json:"actual" yaml:"actual"`

	// Counterfactual is Originals + WouldRepeats.
	Counterfactual int `json:"counterfactual" yaml:"counterfactual"`

	// Reduction is (Counterfactual - Actual) / Actual, or 0 when Actual is 0.
	Reduction float64 `json:"reduction" yaml:"reduction"`
}

// newReport applies the escape adjustment to counters.
func newReport(counters Counters, escapeCost int) *Report {
	r := &Report{
		Counters:     counters,
		Repeats:      counters.Repeated + escapeCost*counters.Escaped,
		WouldRepeats: counters.WouldRepeat + escapeCost*counters.WouldEscape,
	}
	r.Actual = counters.Originals + r.Repeats
	r.Counterfactual = counters.Originals + r.WouldRepeats
	if r.Actual > 0 {
		r.Reduction = float64(r.Counterfactual-r.Actual) / float64(r.Actual)
	}
	return r
}
