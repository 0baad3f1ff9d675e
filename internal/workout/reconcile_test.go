package workout

import "testing"

func intPtr(n int) *int         { return &n }
func f64Ptr(f float64) *float64 { return &f }
func strPtr(s string) *string   { return &s }

func straightItem(id, sets int, logged ...int) Item {
	it := Item{ID: id, Lift: "SQ", Variant: VariantStraight, Sets: intPtr(sets)}
	for i, idx := range logged {
		it.SetLogs = append(it.SetLogs, SetLog{ID: 100 + i, SetIndex: idx, ActualWeightKg: f64Ptr(100)})
	}
	return it
}

func TestNextLoggableIndexProgression(t *testing.T) {
	// prescribed 3, nothing logged → 1; after set 1 → 2; after undo → 1.
	it := straightItem(1, 3)

	idx, ok := NextLoggableIndex(it)
	if !ok || idx != 1 {
		t.Fatalf("empty item: got (%d, %v), want (1, true)", idx, ok)
	}

	it = straightItem(1, 3, 1)
	idx, ok = NextLoggableIndex(it)
	if !ok || idx != 2 {
		t.Fatalf("after set 1: got (%d, %v), want (2, true)", idx, ok)
	}

	// Undo removes the highest-index log; the next index reverts.
	it = straightItem(1, 3)
	idx, ok = NextLoggableIndex(it)
	if !ok || idx != 1 {
		t.Fatalf("after undo: got (%d, %v), want (1, true)", idx, ok)
	}
}

func TestNextLoggableIndexMonotoneAndCapped(t *testing.T) {
	prev := 0
	for logged := 0; logged <= 5; logged++ {
		indices := make([]int, 0, logged)
		for i := 1; i <= logged && i <= 5; i++ {
			indices = append(indices, i)
		}
		it := straightItem(1, 5, indices...)

		idx, ok := NextLoggableIndex(it)
		if !ok {
			if logged < 5 {
				t.Fatalf("%d logged of 5: unexpectedly complete", logged)
			}
			continue
		}
		if idx <= prev {
			t.Errorf("%d logged: index %d not increasing past %d", logged, idx, prev)
		}
		if idx > 5 {
			t.Errorf("%d logged: index %d exceeds prescribed count", logged, idx)
		}
		prev = idx
	}
}

func TestNextLoggableIndexComplete(t *testing.T) {
	it := straightItem(1, 2, 1, 2)
	if idx, ok := NextLoggableIndex(it); ok {
		t.Errorf("fully logged item: got (%d, true), want no loggable index", idx)
	}

	// Zero prescribed sets never offers an input.
	it = Item{ID: 2, Variant: VariantStraight}
	if _, ok := NextLoggableIndex(it); ok {
		t.Error("item without prescribed sets should have no loggable index")
	}
}

func TestHighestLoggedIndexIgnoresOrder(t *testing.T) {
	it := Item{ID: 1, SetLogs: []SetLog{{SetIndex: 2}, {SetIndex: 3}, {SetIndex: 1}}}
	if got := HighestLoggedIndex(it); got != 3 {
		t.Errorf("HighestLoggedIndex = %d, want 3", got)
	}
}

func TestParentChildLookup(t *testing.T) {
	top := Item{ID: 10, Lift: "BN", Variant: VariantTop}
	bk1 := Item{ID: 11, Lift: "BN", Variant: VariantBackdown, ParentItemID: intPtr(10)}
	bk2 := Item{ID: 12, Lift: "BN", Variant: VariantBackdown, ParentItemID: intPtr(10)}
	other := Item{ID: 13, Lift: "SQ", Variant: VariantStraight}
	w := &Workout{ID: 1, CoreItems: []Item{top, bk1, other, bk2}}

	parent := ParentOf(w, bk1)
	if parent == nil || parent.ID != 10 {
		t.Fatalf("ParentOf(bk1) = %v, want item 10", parent)
	}
	if ParentOf(w, other) != nil {
		t.Error("ParentOf without parent_item_id should be nil")
	}

	bks := BackdownsOf(w, top)
	if len(bks) != 2 || bks[0].ID != 11 || bks[1].ID != 12 {
		t.Errorf("BackdownsOf = %v, want items 11, 12", bks)
	}
}

func TestLocateSearchesCoreAndAccessories(t *testing.T) {
	w := &Workout{
		CoreItems: []Item{{ID: 1}},
		AccessoryGroups: []AccessoryGroup{
			{Group: strPtr("A"), Items: []Item{{ID: 20}, {ID: 21}}},
		},
	}

	if it, acc := Locate(w, 1); it == nil || acc {
		t.Error("Locate(1) should find a core item")
	}
	if it, acc := Locate(w, 21); it == nil || !acc {
		t.Error("Locate(21) should find an accessory item")
	}
	if it, _ := Locate(w, 99); it != nil {
		t.Error("Locate(99) should find nothing")
	}
}

func TestCanSubmitGates(t *testing.T) {
	canLog := &Permissions{CanLog: true}
	noLog := &Permissions{CanLog: false}
	it := straightItem(1, 3)

	tests := []struct {
		name   string
		status Status
		perms  *Permissions
		want   bool
	}{
		{"in progress with permission", StatusInProgress, canLog, true},
		{"assigned", StatusAssigned, canLog, false},
		{"completed", StatusCompleted, canLog, false},
		{"no permission", StatusInProgress, noLog, false},
		{"nil permissions", StatusInProgress, nil, false},
	}
	for _, tt := range tests {
		w := &Workout{Status: tt.status, CoreItems: []Item{it}}
		if got := CanSubmit(it, w, tt.perms); got != tt.want {
			t.Errorf("%s: CanSubmit = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCanSubmitBackdownRequiresTopActual(t *testing.T) {
	top := Item{ID: 10, Variant: VariantTop}
	bk := Item{ID: 11, Variant: VariantBackdown, ParentItemID: intPtr(10), Sets: intPtr(3)}
	perms := &Permissions{CanLog: true}

	// Parent top set unlogged: blocked regardless of status and permission.
	for _, status := range []Status{StatusInProgress, StatusCompleted, StatusAssigned} {
		w := &Workout{Status: status, CoreItems: []Item{top, bk}}
		if CanSubmit(bk, w, perms) {
			t.Errorf("status %s: backdown loggable before top actual", status)
		}
	}

	// With the top actual recorded the gate opens.
	loggedTop := top
	loggedTop.ActualWeightKg = f64Ptr(180)
	loggedTop.ActualRPE = f64Ptr(8)
	w := &Workout{Status: StatusInProgress, CoreItems: []Item{loggedTop, bk}}
	if !CanSubmit(bk, w, perms) {
		t.Error("backdown should be loggable once the top actual exists")
	}

	// A dangling parent pointer keeps the gate shut.
	w = &Workout{Status: StatusInProgress, CoreItems: []Item{bk}}
	if CanSubmit(bk, w, perms) {
		t.Error("backdown with unresolvable parent should not be loggable")
	}
}

func TestHasTopActualNeedsBothFields(t *testing.T) {
	it := Item{Variant: VariantTop}
	if HasTopActual(it) {
		t.Error("empty top should have no actual")
	}
	it.ActualWeightKg = f64Ptr(180)
	if HasTopActual(it) {
		t.Error("weight without RPE is not a complete top actual")
	}
	it.ActualRPE = f64Ptr(8.5)
	if !HasTopActual(it) {
		t.Error("weight plus RPE is a complete top actual")
	}
}

func TestCanUndo(t *testing.T) {
	if CanUndo(Item{}) {
		t.Error("no set logs: nothing to undo")
	}
	if !CanUndo(straightItem(1, 3, 1)) {
		t.Error("one set log: undo available")
	}
}
