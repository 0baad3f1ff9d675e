package workout

// The reconciler derives, from the server-provided set logs, which set of
// each item is eligible for input. It never invents indices: it proposes
// the next expected one and the server is free to reject it.

// HighestLoggedIndex returns the largest set_index recorded for the item,
// zero when nothing is logged.
func HighestLoggedIndex(it Item) int {
	highest := 0
	for _, sl := range it.SetLogs {
		if sl.SetIndex > highest {
			highest = sl.SetIndex
		}
	}
	return highest
}

// NextLoggableIndex returns the 1-based index of the next set eligible for
// logging: one past the highest logged index, capped at the prescribed set
// count. ok is false when every prescribed set is logged or the item
// prescribes no sets, in which case the item shows as complete, not as an
// input.
func NextLoggableIndex(it Item) (index int, ok bool) {
	total := it.PrescribedSets()
	if total <= 0 {
		return 0, false
	}
	highest := HighestLoggedIndex(it)
	if highest >= total {
		return 0, false
	}
	return highest + 1, true
}

// HasTopActual reports whether a TOP item's top set has been recorded.
// Both the actual weight and the actual RPE must be present.
func HasTopActual(it Item) bool {
	return it.ActualWeightKg != nil && it.ActualRPE != nil
}

// ParentOf resolves a backdown item's parent TOP item by id within the same
// workout's core item list. The relation is a strict one-level pointer;
// there are no cycles to guard against.
func ParentOf(w *Workout, it Item) *Item {
	if it.ParentItemID == nil {
		return nil
	}
	for i := range w.CoreItems {
		if w.CoreItems[i].ID == *it.ParentItemID {
			return &w.CoreItems[i]
		}
	}
	return nil
}

// BackdownsOf returns the BK items linked to the given TOP item.
func BackdownsOf(w *Workout, top Item) []Item {
	var out []Item
	for _, it := range w.CoreItems {
		if it.Variant == VariantBackdown && it.ParentItemID != nil && *it.ParentItemID == top.ID {
			out = append(out, it)
		}
	}
	return out
}

// Locate finds an item by id in the workout, searching core items and then
// accessory groups. accessory reports which list it came from.
func Locate(w *Workout, itemID int) (it *Item, accessory bool) {
	for i := range w.CoreItems {
		if w.CoreItems[i].ID == itemID {
			return &w.CoreItems[i], false
		}
	}
	for g := range w.AccessoryGroups {
		items := w.AccessoryGroups[g].Items
		for i := range items {
			if items[i].ID == itemID {
				return &items[i], true
			}
		}
	}
	return nil, false
}

// CanSubmit is the three-way gate in front of every set mutation: the
// caller must hold log permission, the workout must be in progress, and a
// backdown item's parent top set must already be recorded. It is evaluated
// fresh on every render and before every submission, because permissions
// and status can change under us between fetches.
func CanSubmit(it Item, w *Workout, perms *Permissions) bool {
	if perms == nil || !perms.CanLog {
		return false
	}
	if w.Status != StatusInProgress {
		return false
	}
	if it.Variant == VariantBackdown && it.ParentItemID != nil {
		parent := ParentOf(w, it)
		if parent == nil || !HasTopActual(*parent) {
			return false
		}
	}
	return true
}

// CanUndo reports whether the item has a set log to remove. Undo always
// targets the highest-index log; the server enforces the same rule.
func CanUndo(it Item) bool {
	return len(it.SetLogs) > 0
}
