package zlog

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/torlangballe/zstats/zstr"
)

type Priority int
type StackAdjust int

const (
	Verbose Priority = iota
	DebugLevel
	InfoLevel
	WarningLevel
	ErrorLevel
)

var (
	// OutputLevel is the lowest priority that gets printed. Errors are still returned below it.
	OutputLevel = InfoLevel
	UseColor    = false
	IsInTests   bool

	outputHooks = map[string]func(s string){}
	hookingLock sync.Mutex
	hooking     = false
)

func init() {
	IsInTests = strings.HasSuffix(os.Args[0], ".test")
	if IsInTests {
		OutputLevel = Verbose
	}
}

// Error performs Log with ErrorLevel priority, returning an error made of err and parts
func Error(err error, parts ...any) error {
	return baseLog(err, ErrorLevel, 4, parts...)
}

// Warn performs Log with WarningLevel priority
func Warn(parts ...any) {
	baseLog(nil, WarningLevel, 4, parts...)
}

// Info performs Log with InfoLevel priority
func Info(parts ...any) {
	baseLog(nil, InfoLevel, 4, parts...)
}

// Debug performs Log with DebugLevel priority
func Debug(parts ...any) {
	baseLog(nil, DebugLevel, 4, parts...)
}

// Log returns a new error combined with err (if not nil), and parts. Printing done if priority >= OutputLevel
func Log(err error, priority Priority, parts ...any) error {
	return baseLog(err, priority, 4, parts...)
}

func NewError(parts ...any) error {
	var err error
	if len(parts) > 0 {
		err, _ = parts[0].(error)
		if err != nil {
			parts = parts[1:]
		}
	}
	p := zstr.SprintSpaced(parts...)
	pnew := zstr.ColorSetter.Replace(p)
	if pnew != p {
		p = pnew + zstr.EscNoColor
	}
	if err != nil {
		if p == "" {
			return err
		}
		return errors.Wrap(err, p)
	}
	return errors.New(p)
}

func baseLog(err error, priority Priority, pos int, parts ...any) error {
	if len(parts) != 0 {
		n, got := parts[0].(StackAdjust)
		if got {
			parts = parts[1:]
			pos += int(n)
		}
	}
	if err != nil {
		parts = append([]any{err}, parts...)
	}
	err = NewError(parts...)
	if priority < OutputLevel {
		return err
	}
	col := ""
	endCol := ""
	if UseColor {
		if priority >= ErrorLevel {
			col = zstr.EscMagenta
			endCol = zstr.EscNoColor
		} else if priority >= WarningLevel {
			col = zstr.EscYellow
			endCol = zstr.EscNoColor
		}
	}
	finfo := time.Now().Local().Format("15:04:05/02 ")
	if priority != InfoLevel {
		finfo += GetCallingFunctionString(pos) + ": "
	}
	fmt.Println(finfo + col + err.Error() + endCol)
	str := finfo + zstr.ColorRemover.Replace(err.Error()) + "\n"

	hookingLock.Lock()
	if !hooking {
		hooking = true
		for _, f := range outputHooks {
			f(str)
		}
		hooking = false
	}
	hookingLock.Unlock()
	return err
}

func GetCallingFunctionInfo(pos int) (function, file string, line int) {
	pc, file, line, ok := runtime.Caller(pos)
	if ok {
		function = runtime.FuncForPC(pc).Name()
	}
	return
}

func GetCallingFunctionString(pos int) string {
	function, file, line := GetCallingFunctionInfo(pos)
	if function == "" {
		return ""
	}
	_, function = path.Split(function)
	_, file = path.Split(file)
	return fmt.Sprintf("%s:%d %s()", file, line, function)
}

func OnError(err error, parts ...any) bool {
	if err != nil {
		parts = append([]any{StackAdjust(1)}, parts...)
		Error(err, parts...)
		return true
	}
	return false
}

// AddHook calls call with every printed line. Use RemoveHook with the same id to stop.
func AddHook(id string, call func(s string)) {
	hookingLock.Lock()
	outputHooks[id] = call
	hookingLock.Unlock()
}

func RemoveHook(id string) {
	hookingLock.Lock()
	delete(outputHooks, id)
	hookingLock.Unlock()
}

func Wrap(err error, parts ...any) error {
	p := zstr.SprintSpaced(parts...)
	return errors.Wrap(err, p)
}
