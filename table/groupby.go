package table

// GroupMeanBy collapses rows sharing the same key into a single row per key,
// averaging each of the given numeric value columns over its valid cells.
//
// Engine certification sheets often carry several measurement rows per
// engine identification; averaging them before fitting is the standard
// preparation step. Keys appear in the output in first-appearance order.
// Rows whose key cell is invalid are dropped. A key whose value column has
// no valid cells yields an invalid cell in the output.
//
// The result contains the key column followed by the value columns, in the
// order given. The source table is not modified.
func (t *Table) GroupMeanBy(keyCol string, valueCols ...string) (*Table, error) {
	key, err := t.Text(keyCol)
	if err != nil {
		return nil, err
	}

	values := make([]*Column, len(valueCols))
	for i, name := range valueCols {
		values[i], err = t.Numeric(name)
		if err != nil {
			return nil, err
		}
	}

	var keys []string
	groupIdx := make(map[string]int)
	for i := 0; i < t.rows; i++ {
		k, ok := key.TextAt(i)
		if !ok {
			continue
		}
		if _, seen := groupIdx[k]; !seen {
			groupIdx[k] = len(keys)
			keys = append(keys, k)
		}
	}

	sums := make([][]float64, len(values))
	counts := make([][]int, len(values))
	for c := range values {
		sums[c] = make([]float64, len(keys))
		counts[c] = make([]int, len(keys))
	}

	for i := 0; i < t.rows; i++ {
		k, ok := key.TextAt(i)
		if !ok {
			continue
		}
		g := groupIdx[k]
		for c, col := range values {
			v, ok := col.NumericAt(i)
			if !ok {
				continue
			}
			sums[c][g] += v
			counts[c][g]++
		}
	}

	outCols := make([]*Column, 0, len(values)+1)
	outCols = append(outCols, NewTextColumn(keyCol, keys))
	for c, name := range valueCols {
		means := make([]float64, len(keys))
		valid := make([]bool, len(keys))
		for g := range keys {
			if counts[c][g] > 0 {
				means[g] = sums[c][g] / float64(counts[c][g])
				valid[g] = true
			}
		}
		outCols = append(outCols, NewNumericColumnWithValidity(name, means, valid))
	}

	return New(outCols...)
}
