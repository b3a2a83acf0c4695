package engine

// Candidate enumeration over resolved member lists

// Product returns an iterator over the cross product of the member lists,
// each combination joined with no delimiter. Odometer order: the last
// position varies fastest, exactly like nested loops. The iterator is a
// pure function of the lists, so ranging over it again restarts from the
// beginning.
func Product(lists [][]string) func(func(string) bool) {
	return func(yield func(string) bool) {
		if len(lists) == 0 {
			return
		}
		for _, list := range lists {
			if len(list) == 0 {
				return
			}
		}

		indices := make([]int, len(lists))

		for {
			candidate := ""
			for pos, i := range indices {
				candidate += lists[pos][i]
			}

			if !yield(candidate) {
				return
			}

			i := len(lists) - 1
			for i >= 0 && indices[i] == len(lists[i])-1 {
				i--
			}
			if i < 0 {
				break
			}

			indices[i]++
			for j := i + 1; j < len(lists); j++ {
				indices[j] = 0
			}
		}
	}
}
