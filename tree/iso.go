package tree

// Isomorphic reports whether two open trees have the same structure: both
// identities on equal types, or both nonempty with equal root labels and
// pairwise isomorphic children.
//
// Child order is significant, since it encodes argument order; only arena
// node identity is abstracted away.
func Isomorphic[Ty, Op comparable](a, b OpenTree[Ty, Op]) bool {
	switch {
	case a.IsId() && b.IsId():
		return a.IdType() == b.IdType()
	case a.IsId() || b.IsId():
		return false
	default:
		return isoNodes(a.Tree(), a.Tree().Root(), b.Tree(), b.Tree().Root())
	}
}

func isoNodes[Op comparable](ta *Tree[Slot[Op]], na NodeID, tb *Tree[Slot[Op]], nb NodeID) bool {
	if ta.Value(na) != tb.Value(nb) {
		return false
	}
	ka, kb := ta.Children(na), tb.Children(nb)
	if len(ka) != len(kb) {
		return false
	}
	for i := range ka {
		if !isoNodes(ta, ka[i], tb, kb[i]) {
			return false
		}
	}
	return true
}
