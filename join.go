package depot

import "iter"

// Join yields, in ascending order, the entities present in every view.
// Slot i of every column belongs to entity i. With no views nothing is
// yielded.
func Join(views ...Presence) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		if len(views) == 0 {
			return
		}
		n := views[0].Len()
		for _, v := range views[1:] {
			n = min(n, v.Len())
		}
		for i := 0; i < n; i++ {
			entity := EntityID(i)
			if !presentInAll(entity, views) {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

func presentInAll(entity EntityID, views []Presence) bool {
	for _, v := range views {
		if !v.Has(entity) {
			return false
		}
	}
	return true
}
