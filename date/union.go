package date

import "iter"

// iterate returns an iterator over all unique, sorted dates from multiple sorted slices of dates.
func iterate(series ...[]Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		indexes := make([]int, len(series))
		for {
			// find the smallest date not yet consumed.
			var m Date
			found := false
			for i, index := range indexes {
				if index >= len(series[i]) {
					continue
				}
				if on := series[i][index]; !found || on.Before(m) {
					m, found = on, true
				}
			}
			if !found {
				// All series have been consumed, exit.
				return
			}
			// consume it in every series holding it.
			for i, index := range indexes {
				if index < len(series[i]) && series[i][index] == m {
					indexes[i]++
				}
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Union returns an iterator over the sorted union of the dates of several series.
func Union(series ...*Series) iter.Seq[Date] {
	dates := make([][]Date, 0, len(series))
	for _, s := range series {
		dates = append(dates, s.days)
	}
	return iterate(dates...)
}
