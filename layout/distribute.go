// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cmp"
	"slices"
)

// DistributeNaturalAllocation distributes extraSpace among the given
// sizes so that each grows from its minimum towards its natural size,
// giving the space to the children with the smallest gap first and
// splitting the rest evenly. The Min field of each size is increased
// in place by its share. It returns the space left over once every
// child has reached its natural size.
func DistributeNaturalAllocation(extraSpace int, sizes []RequestedSize) int {
	if extraSpace <= 0 || len(sizes) == 0 {
		return max(extraSpace, 0)
	}
	gap := func(i int) int {
		return max(sizes[i].Nat-sizes[i].Min, 0)
	}
	spreading := make([]int, len(sizes))
	for i := range spreading {
		spreading[i] = i
	}
	// largest gap first, so that iterating from the end
	// serves the smallest gaps first
	slices.SortStableFunc(spreading, func(a, b int) int {
		if c := cmp.Compare(gap(b), gap(a)); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})
	for i := len(spreading) - 1; extraSpace > 0 && i >= 0; i-- {
		glomp := (extraSpace + i) / (i + 1)
		extra := min(glomp, gap(spreading[i]))
		sizes[spreading[i]].Min += extra
		extraSpace -= extra
	}
	return extraSpace
}
