package synth

// normalizeComposite resolves every member of node's composition keywords
// (allOf, oneOf, anyOf) in place on the already-copied node.
//
// Members are resolved independently and carried forward as siblings: no
// structural merge for allOf and no branch selection for oneOf/anyOf. The
// consumer decides what to do with the member list (the synthesizer uses the
// first member).
func (r *Resolver) normalizeComposite(node *Schema, doc Document, depth int) {
	for i, member := range node.AllOf {
		node.AllOf[i] = r.resolveAll(member, doc, depth+1)
	}
	for i, member := range node.OneOf {
		node.OneOf[i] = r.resolveAll(member, doc, depth+1)
	}
	for i, member := range node.AnyOf {
		node.AnyOf[i] = r.resolveAll(member, doc, depth+1)
	}
}

// compositeMembers returns the node's member list for the first composition
// keyword present, in allOf, oneOf, anyOf order.
func (s *Schema) compositeMembers() []*Schema {
	switch {
	case len(s.AllOf) > 0:
		return s.AllOf
	case len(s.OneOf) > 0:
		return s.OneOf
	case len(s.AnyOf) > 0:
		return s.AnyOf
	default:
		return nil
	}
}
