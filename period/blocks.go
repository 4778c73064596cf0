package period

// Partition floors every index value and collapses maximal runs of equal
// consecutive labels into Blocks, in position (and therefore label) order.
//
// Complexity: O(n) time, O(blocks) memory.
func Partition[K any, L comparable](idx []K, floor Floor[K, L]) []Block[L] {
	var blocks []Block[L]
	for i, v := range idx {
		l := floor(v)
		if len(blocks) > 0 && blocks[len(blocks)-1].Label == l {
			blocks[len(blocks)-1].Last = i

			continue
		}
		blocks = append(blocks, Block[L]{Label: l, First: i, Last: i})
	}

	return blocks
}
