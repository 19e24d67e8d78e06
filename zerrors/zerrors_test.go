package zerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/torlangballe/zstats/zdict"
)

var errBase = errors.New("percentile must be a number between 0 and 1")

func TestContextErrorText(t *testing.T) {
	fmt.Println("TestContextErrorText")
	ce := MakeContextError(zdict.Dict{"percentile": 1.1}, errBase)
	if ce.Error() != "percentile must be a number between 0 and 1 (percentile=1.1)" {
		t.Error("wrong text:", ce.Error())
	}
	titled := MakeContextError(nil, "getting", "percentile", errBase)
	if titled.Error() != "getting percentile: percentile must be a number between 0 and 1" {
		t.Error("wrong titled text:", titled.Error())
	}
}

func TestContextErrorUnwrap(t *testing.T) {
	fmt.Println("TestContextErrorUnwrap")
	var err error = MakeContextError(zdict.Dict{"p": -1}, errBase)
	if !errors.Is(err, errBase) {
		t.Error("should unwrap to base")
	}
	outer := MakeContextError(nil, "outer", err)
	if outer.SubContextError == nil {
		t.Error("sub context error not set")
	}
	ce, got := ContextErrorFromError(fmt.Errorf("wrapped: %w", err))
	if !got || ce.KeyValues["p"] != -1 {
		t.Error("ContextErrorFromError failed:", ce, got)
	}
}
