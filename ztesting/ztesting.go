package ztesting

import (
	"cmp"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/torlangballe/zstats/zlog"
	"github.com/torlangballe/zstats/zstr"
)

func Equal[N comparable](t *testing.T, str string, a, b N) bool {
	t.Helper()
	if a != b {
		str := zstr.Spaced(str+":", a, "!=", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func Different[N comparable](t *testing.T, str string, a, b N) bool {
	t.Helper()
	if a == b {
		str := zstr.Spaced(str+":", a, "==", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func GreaterThan[N cmp.Ordered](t *testing.T, str string, a, b N) bool {
	t.Helper()
	if a < b {
		str := zstr.Spaced(str+":", a, "<", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func LessThan[N cmp.Ordered](t *testing.T, str string, a, b N) bool {
	t.Helper()
	if a > b {
		str := zstr.Spaced(str+":", a, ">", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

// InDelta fails if a and b differ by more than delta.
func InDelta(t *testing.T, str string, a, b, delta float64) bool {
	t.Helper()
	return assert.InDelta(t, a, b, delta, str)
}

// SlicesEqual fails if a and b differ in length or any element.
func SlicesEqual[N comparable](t *testing.T, str string, a, b []N) bool {
	t.Helper()
	return assert.Equal(t, a, b, str)
}

// NoError fails if err is not nil.
func NoError(t *testing.T, str string, err error) bool {
	t.Helper()
	return assert.NoError(t, err, str)
}

// ErrorIs fails unless err wraps target.
func ErrorIs(t *testing.T, str string, err, target error) bool {
	t.Helper()
	return assert.ErrorIs(t, err, target, str)
}

// EqualText fails if a and b differ, logging a character diff of them.
func EqualText(t *testing.T, str, a, b string) bool {
	t.Helper()
	if a == b {
		return true
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str, "\n"+dmp.DiffPrettyText(diffs))
	t.Error(str+":", a, "!=", b)
	return false
}
