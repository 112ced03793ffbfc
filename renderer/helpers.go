package renderer

import "strings"

// ConditionalBlock lets you fully write a block and decide at the end to
// print it or not. If the block function returns true, the content is
// appended to b, otherwise it is discarded.
func ConditionalBlock(b *strings.Builder, block func(*strings.Builder) bool) {
	var bw strings.Builder
	if block(&bw) {
		b.WriteString(bw.String())
	}
}
