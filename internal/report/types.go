package report

// Entry is the serialised outcome for one feature. Undefined ratios are nil
// and encode as JSON null.
type Entry struct {
	Feature     string   `json:"feature"`
	JLRatio     *float64 `json:"jl_ratio"`
	JNLRatio    *float64 `json:"jnl_ratio"`
	Pairs       int      `json:"pairs"`
	Links       int      `json:"links"`
	Jaccs       int      `json:"jaccs"`
	LinkedJaccs int      `json:"linked_jaccs"`
	Excluded    int      `json:"excluded"`
}

type Report struct {
	Dataset  string  `json:"dataset"`
	Records  int     `json:"records"`
	Triangle string  `json:"triangle"`
	Features []Entry `json:"features"`
}
