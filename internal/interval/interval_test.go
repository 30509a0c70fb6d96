package interval

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDisjoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"gap between", Interval{0, 3}, Interval{5, 8}, true},
		{"gap reversed", Interval{5, 8}, Interval{0, 3}, true},
		{"touching", Interval{0, 3}, Interval{3, 6}, false},
		{"overlapping", Interval{0, 4}, Interval{2, 6}, false},
		{"nested", Interval{0, 10}, Interval{2, 3}, false},
		{"one apart", Interval{0, 3}, Interval{4, 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Disjoint(tt.a, tt.b))
		})
	}
}

func TestMergeUnion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{"nil input", nil, nil},
		{"only empty intervals", []Interval{{3, 3}, {5, 4}}, nil},
		{"single", []Interval{{1, 4}}, []Interval{{1, 4}}},
		{"unsorted disjoint", []Interval{{10, 12}, {0, 2}, {5, 7}}, []Interval{{0, 2}, {5, 7}, {10, 12}}},
		{"touching merge", []Interval{{0, 3}, {3, 6}}, []Interval{{0, 6}}},
		{"overlap chain", []Interval{{4, 9}, {0, 5}, {8, 12}}, []Interval{{0, 12}}},
		{"nested keeps outer end", []Interval{{0, 20}, {2, 5}, {6, 8}}, []Interval{{0, 20}}},
		{"empty interval ignored", []Interval{{0, 2}, {7, 7}, {4, 6}}, []Interval{{0, 2}, {4, 6}}},
		{"duplicates", []Interval{{1, 3}, {1, 3}, {1, 3}}, []Interval{{1, 3}}},
		{"negative coordinates", []Interval{{-8, -2}, {-3, 1}, {5, 6}}, []Interval{{-8, 1}, {5, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MergeUnion(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeUnion() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeUnionDoesNotModifyInput(t *testing.T) {
	in := []Interval{{10, 12}, {0, 2}}
	_ = MergeUnion(in)
	assert.Equal(t, []Interval{{10, 12}, {0, 2}}, in)
}

func TestSubtractPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  []Interval
		x    int64
		want []Interval
	}{
		{"not covered", []Interval{{0, 3}, {5, 8}}, 4, []Interval{{0, 3}, {5, 8}}},
		{"at exclusive end", []Interval{{0, 3}}, 3, []Interval{{0, 3}}},
		{"split", []Interval{{-2, 25}}, 2, []Interval{{-2, 2}, {3, 25}}},
		{"shrink start", []Interval{{0, 5}}, 0, []Interval{{1, 5}}},
		{"shrink end", []Interval{{0, 5}}, 4, []Interval{{0, 4}}},
		{"drop unit", []Interval{{0, 2}, {7, 8}, {9, 12}}, 7, []Interval{{0, 2}, {9, 12}}},
		{"empty set", nil, 1, []Interval{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SubtractPoint(tt.set, tt.x)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SubtractPoint() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTotalLength(t *testing.T) {
	assert.Equal(t, int64(0), TotalLength(nil))
	assert.Equal(t, int64(26), TotalLength([]Interval{{-2, 2}, {3, 25}}))
}

func randomIntervals(rng *rand.Rand, n int) []Interval {
	out := make([]Interval, n)
	for i := range out {
		start := int64(rng.Intn(60) - 30)
		out[i] = Interval{Start: start, End: start + int64(rng.Intn(12)) - 1}
	}
	return out
}

func coveredByAny(set []Interval, x int64) bool {
	for _, iv := range set {
		if iv.Contains(x) {
			return true
		}
	}
	return false
}

func TestMergeUnionProperties(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(15))

	for trial := 0; trial < 500; trial++ {
		in := randomIntervals(rng, rng.Intn(10))
		got := MergeUnion(in)

		for i := 1; i < len(got); i++ {
			if got[i-1].Start >= got[i].Start {
				t.Fatalf("trial %d: output not sorted: %v", trial, got)
			}
			if !Disjoint(got[i-1], got[i]) {
				t.Fatalf("trial %d: output members %v and %v are mergeable", trial, got[i-1], got[i])
			}
		}
		for x := int64(-40); x <= 45; x++ {
			if Covers(got, x) != coveredByAny(in, x) {
				t.Fatalf("trial %d: coverage of %d differs; in=%v out=%v", trial, x, in, got)
			}
		}
	}
}

func TestSubtractPointProperties(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(10))

	for trial := 0; trial < 500; trial++ {
		set := MergeUnion(randomIntervals(rng, rng.Intn(8)))
		removed := int64(rng.Intn(70) - 35)
		got := SubtractPoint(set, removed)

		for x := int64(-40); x <= 45; x++ {
			want := Covers(set, x) && x != removed
			if Covers(got, x) != want {
				t.Fatalf("trial %d: x=%d removed=%d covered=%v want %v; set=%v got=%v",
					trial, x, removed, Covers(got, x), want, set, got)
			}
		}
		for _, iv := range got {
			if iv.Len() == 0 {
				t.Fatalf("trial %d: empty interval %v left in result", trial, iv)
			}
		}
	}
}
