package zdict

import (
	"fmt"
	"sort"
)

type Dict map[string]any

// Join returns key/values as k<equal>v separated by sep, in sorted key order.
func (d Dict) Join(equal, sep string) string {
	str := ""
	for _, k := range d.SortedKeys() {
		if str != "" {
			str += sep
		}
		str += fmt.Sprint(k, equal, d[k])
	}
	return str
}

func (d Dict) SortedKeys() (keys []string) {
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
