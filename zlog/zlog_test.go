package zlog

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorWraps(t *testing.T) {
	fmt.Println("TestErrorWraps")
	base := errors.New("base")
	err := Error(base, "while parsing", 42)
	if !errors.Is(err, base) {
		t.Error("logged error should wrap base:", err)
	}
	if err.Error() != "while parsing 42: base" {
		t.Error("wrong error text:", err)
	}
}

func TestHook(t *testing.T) {
	fmt.Println("TestHook")
	var lines []string
	AddHook("test", func(s string) {
		lines = append(lines, s)
	})
	defer RemoveHook("test")
	Warn("hooked", "line")
	if len(lines) != 1 || !strings.Contains(lines[0], "hooked line") {
		t.Error("hook not called with line:", lines)
	}
	Warn("🟥colored")
	if len(lines) != 2 || strings.Contains(lines[1], "\x1B") || !strings.Contains(lines[1], "colored") {
		t.Error("hook line should have colors removed:", lines)
	}
}

func TestOutputLevel(t *testing.T) {
	fmt.Println("TestOutputLevel")
	old := OutputLevel
	OutputLevel = ErrorLevel
	defer func() { OutputLevel = old }()
	var called bool
	AddHook("level", func(s string) { called = true })
	defer RemoveHook("level")
	Debug("hidden")
	if called {
		t.Error("debug line should not be output above its level")
	}
	err := Log(nil, DebugLevel, "still", "an", "error")
	if err == nil || err.Error() != "still an error" {
		t.Error("Log should return error below output level:", err)
	}
}
