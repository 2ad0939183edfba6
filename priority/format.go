package priority

import (
	"fmt"
	"strings"
)

// String lists every element in traversal order, one per line, formatted as
// "<priority> value: <value>".
func (q *Queue[T]) String() string {
	var sb strings.Builder
	for p, v := range q.All() {
		fmt.Fprintf(&sb, "%d value: %v\n", p, v)
	}
	return sb.String()
}
