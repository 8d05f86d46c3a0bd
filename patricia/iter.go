package patricia

// Visit calls cb with every stored (key, value) pair reachable from n, in
// sorted-edge order, stopping early if cb returns true. buf is the
// in-progress key, grown and shrunk symmetrically as the traversal
// descends and ascends.
func Visit[V any](n *Node[V], buf []byte, cb func(key []byte, value *V) bool) bool {
	if p := n.Value.Ptr(); p != nil {
		if cb(buf, p) {
			return true
		}
	}

	for _, e := range n.Edges {
		child := e.Target
		buf = append(buf, child.Partial.Raw()...)

		if Visit(child, buf, cb) {
			return true
		}

		buf = buf[:len(buf)-child.Partial.Len()]
	}

	return false
}

// VisitPrefix calls cb with every stored (key, value) pair whose key begins
// with prefix, stopping early if cb returns true.
func VisitPrefix[V any](n *Node[V], prefix []byte, cb func(key []byte, value *V) bool) bool {
	search := prefix
	buf := append([]byte{}, prefix...)

	for len(search) > 0 {
		child := n.GetEdge(search[0])
		if child == nil {
			return false
		}

		childPrefix := child.Partial.Raw()

		if len(search) <= len(childPrefix) {
			if !hasPrefix(childPrefix, search) {
				return false
			}

			buf = append(buf[:len(buf)-len(search)], childPrefix...)

			return Visit(child, buf, cb)
		}

		if !hasPrefix(search, childPrefix) {
			return false
		}

		search = search[len(childPrefix):]
		n = child
	}

	return Visit(n, buf, cb)
}
