package sheet

// ConvertToObjects walks every entry of the collection and replaces each
// compact headers/data sheet with its row records, in row order. Entries
// that do not have the compact shape are copied through unchanged, on the
// assumption the caller knows what they are. The input is never mutated
// and the output has exactly the input's key set.
func ConvertToObjects(sheets Collection) Collection {
	out := make(Collection, len(sheets))
	for name, raw := range sheets {
		if tbl, ok := asTable(raw); ok {
			out[name] = tbl.Records()
		} else {
			out[name] = raw
		}
	}
	return out
}

// Records builds one Record per data row using the positional rule:
// header i takes row value i. Rows shorter than the header list keep the
// missing keys with an explicit nil; values beyond the header list are
// dropped. The loop is bounded by the header count so no row length can
// index out of range.
func (t Table) Records() []Record {
	records := make([]Record, 0, len(t.Data))
	for _, row := range t.Data {
		rec := make(Record, len(t.Headers))
		for i, header := range t.Headers {
			if i < len(row) {
				rec[header] = row[i]
			} else {
				rec[header] = nil
			}
		}
		records = append(records, rec)
	}
	return records
}

// asTable recognizes the compact sheet shape. It accepts the typed Table
// (by value or pointer) and the generic map form produced by JSON
// decoding, where headers is a string sequence and data is a sequence of
// rows. Anything else is not a table and passes through.
func asTable(raw interface{}) (Table, bool) {
	switch v := raw.(type) {
	case Table:
		return v, true
	case *Table:
		if v != nil {
			return *v, true
		}
	case map[string]interface{}:
		return tableFromMap(v)
	}
	return Table{}, false
}

func tableFromMap(m map[string]interface{}) (Table, bool) {
	rawHeaders, ok := m["headers"]
	if !ok {
		return Table{}, false
	}
	rawData, ok := m["data"]
	if !ok {
		return Table{}, false
	}

	headers, ok := stringSlice(rawHeaders)
	if !ok {
		return Table{}, false
	}
	data, ok := rowSlice(rawData)
	if !ok {
		return Table{}, false
	}

	return Table{Headers: headers, Data: data}, true
}

func stringSlice(raw interface{}) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func rowSlice(raw interface{}) ([][]interface{}, bool) {
	switch v := raw.(type) {
	case [][]interface{}:
		return v, true
	case []interface{}:
		out := make([][]interface{}, 0, len(v))
		for _, item := range v {
			row, ok := item.([]interface{})
			if !ok {
				return nil, false
			}
			out = append(out, row)
		}
		return out, true
	}
	return nil, false
}
