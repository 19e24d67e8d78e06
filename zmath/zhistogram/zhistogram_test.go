package zhistogram

import (
	"fmt"
	"testing"

	"github.com/torlangballe/zstats/zlog"
	"github.com/torlangballe/zstats/zmath"
	"github.com/torlangballe/zstats/ztesting"
)

func testSimple(t *testing.T) {
	zlog.Warn("testSimple")
	h1 := New(7, zmath.MakeRange(0.0, 70.0))
	h1.Add(5)
	h1.Add(10)
	h1.Add(12)
	h1.Add(55)
	h1.Add(70)
	ztesting.Equal(t, "classes", fmt.Sprint(h1.Counts()), "[1 2 0 0 0 1 1]")

	h2 := New(7, zmath.MakeRange(0.0, 70.0))
	h2.Add(7)
	h2.Add(14)
	h2.Add(42)
	h2.Add(-1)
	h2.Add(71)
	ztesting.Equal(t, "classes2", fmt.Sprint(h2.Counts()), "[1 1 0 0 1 0 0]")
	ztesting.Equal(t, "below", h2.OutlierBelow, 1)
	ztesting.Equal(t, "above", h2.OutlierAbove, 1)
}

func testCalc(t *testing.T) {
	zlog.Warn("testCalc")
	counts := Calc([]any{1, 2, 3, 4, 5, 6, 7, 8}, 0, "", nil)
	// width (8-1)/4 = 1.75: [1,2.75) [2.75,4.5) [4.5,6.25) [6.25,8]
	ztesting.SlicesEqual(t, "default bins", counts, []int{2, 2, 2, 2})

	recs := []any{
		map[string]any{"v": 0.0},
		map[string]any{"v": 9.9},
		nil,
		map[string]any{"v": 10.0},
		map[string]any{"x": 3},
	}
	ztesting.SlicesEqual(t, "max in last bin", Calc(recs, 2, "v", nil), []int{1, 2})
	ztesting.SlicesEqual(t, "empty", Calc(nil, 3, "", nil), []int{0, 0, 0})
	ztesting.SlicesEqual(t, "same values", Calc([]any{4, 4, 4}, 3, "", nil), []int{0, 0, 3})
}

func testClassIndex(t *testing.T) {
	zlog.Warn("testClassIndex")
	h := New(4, zmath.MakeRange(2.0, 10.0))
	ztesting.Equal(t, "range", h.Range(), zmath.MakeRange(2.0, 10.0))
	ztesting.Equal(t, "first", h.ClassIndex(2), 0)
	ztesting.Equal(t, "boundary goes up", h.ClassIndex(4), 1)
	ztesting.Equal(t, "max clamped to last", h.ClassIndex(10), 3)
	ztesting.Equal(t, "below", h.ClassIndex(1.99), -1)
	ztesting.Equal(t, "above", h.ClassIndex(10.01), -1)
	ztesting.LessThan(t, "last index within classes", h.ClassIndex(10), len(h.Classes))

	flat := New(3, zmath.MakeRange(5.0, 5.0))
	ztesting.Equal(t, "zero width in last", flat.ClassIndex(5), 2)
	ztesting.Equal(t, "zero width outside", flat.ClassIndex(6), -1)
}

func TestAll(t *testing.T) {
	fmt.Println("TestHistogram")
	testSimple(t)
	testCalc(t)
	testClassIndex(t)
}
