package sheet

// Table is the compact sheet shape: ordered headers plus parallel row
// arrays. This is how workbook data arrives from the loader before it is
// converted into records.
type Table struct {
	Headers []string        `json:"headers"`
	Data    [][]interface{} `json:"data"`
}

// Record is one row keyed by header. Short rows keep every header key,
// with nil marking the positions the row never filled.
type Record map[string]interface{}

// Collection maps sheet names to their content. A value is either a
// compact Table (typed or the map shape JSON decoding produces) or any
// other payload the caller wants carried through untouched.
type Collection map[string]interface{}
