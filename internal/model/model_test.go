package model

import (
	"reflect"
	"testing"
)

func TestItemDistribution_Contains(t *testing.T) {
	d := ItemDistribution{Min: 10, Max: 20}

	tests := []struct {
		name string
		w    int
		want bool
	}{
		{"below", 9, false},
		{"lower bound", 10, true},
		{"inside", 15, true},
		{"upper bound", 20, true},
		{"above", 21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Contains(tt.w); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.w, got, tt.want)
			}
		})
	}

	if got := d.Spread(); got != 10 {
		t.Errorf("Spread() = %d, want 10", got)
	}
}

func TestWeightTable_Weight(t *testing.T) {
	wt := WeightTable{{10, 20, 30}, {11, 21, 31}}

	if wt.Scenarios() != 2 {
		t.Errorf("Scenarios() = %d, want 2", wt.Scenarios())
	}
	if wt.Items() != 3 {
		t.Errorf("Items() = %d, want 3", wt.Items())
	}

	if w, ok := wt.Weight(1, 2); !ok || w != 31 {
		t.Errorf("Weight(1, 2) = %d, %v; want 31, true", w, ok)
	}
	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		if _, ok := wt.Weight(idx[0], idx[1]); ok {
			t.Errorf("Weight(%d, %d) should be out of range", idx[0], idx[1])
		}
	}

	if got := wt.ScenarioTotal(0); got != 60 {
		t.Errorf("ScenarioTotal(0) = %d, want 60", got)
	}
	if got := wt.ScenarioTotal(5); got != 0 {
		t.Errorf("ScenarioTotal(5) = %d, want 0", got)
	}
}

func TestWeightTable_Empty(t *testing.T) {
	var wt WeightTable
	if wt.Items() != 0 || wt.Scenarios() != 0 {
		t.Errorf("empty table: Items()=%d Scenarios()=%d", wt.Items(), wt.Scenarios())
	}
}

func TestPartition_Helpers(t *testing.T) {
	p := Partition{{3, 1}, {}, {0, 2}}

	if p.BinCount() != 3 {
		t.Errorf("BinCount() = %d, want 3", p.BinCount())
	}
	if p.ItemCount() != 4 {
		t.Errorf("ItemCount() = %d, want 4", p.ItemCount())
	}
	if got := p.Flatten(); !reflect.DeepEqual(got, []int{3, 1, 0, 2}) {
		t.Errorf("Flatten() = %v", got)
	}
	if got := p.Sorted(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Errorf("Sorted() = %v", got)
	}
	if p.EmptyBins() != 1 {
		t.Errorf("EmptyBins() = %d, want 1", p.EmptyBins())
	}
}

func TestPartition_CloneIsDeep(t *testing.T) {
	p := Partition{{0, 1}, {2}}
	c := p.Clone()
	c[0][0] = 99

	if p[0][0] != 0 {
		t.Error("Clone() shares bin storage with the original")
	}
	if Partition(nil).Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}

func TestViolations_Empty(t *testing.T) {
	if !(Violations{}).Empty() {
		t.Error("zero Violations should be empty")
	}
	if (Violations{Duplicated: []int{1}}).Empty() {
		t.Error("duplicated item should not be empty")
	}
}
