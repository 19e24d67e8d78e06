package zdict

import (
	"fmt"
	"testing"
)

func TestJoinSorted(t *testing.T) {
	fmt.Println("TestJoinSorted")
	d := Dict{"weight": "", "value": "price", "p": 1.5}
	if got := d.Join("=", " "); got != "p=1.5 value=price weight=" {
		t.Error("Join wrong:", got)
	}
}
