// Package render converts entity graphs into acyclic, client-facing
// representations.
//
// Entities expose their scalar fields and hydrated relationships through the
// Node interface. Render walks that graph and emits plain maps suitable for
// JSON encoding, skipping every relationship path a Ruleset excludes. Because
// back-references (camper -> signups -> signup -> camper) can form cycles in a
// hydrated graph, every endpoint passes a Ruleset that cuts the back edge;
// a recursion depth cap backstops rendering so output is finite for any graph
// shape.
package render

// maxDepth bounds relationship recursion. Rulesets are expected to cut every
// cycle well before this; the cap guarantees termination if one does not.
const maxDepth = 8

// Node is an entity the renderer can serialize.
type Node interface {
	// Fields returns the scalar fields of the entity.
	Fields() map[string]interface{}
	// Relations returns named related entities. Values are either a Node or
	// a []interface{} of Nodes. A nil map means nothing was hydrated.
	Relations() map[string]interface{}
}

// Ruleset is a set of dotted relationship paths to exclude from output,
// e.g. "signups.camper" omits each signup's camper back-reference when
// serializing a camper.
type Ruleset struct {
	excluded map[string]struct{}
}

// NewRuleset builds a ruleset from relationship paths
func NewRuleset(paths ...string) Ruleset {
	excluded := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		excluded[p] = struct{}{}
	}
	return Ruleset{excluded: excluded}
}

// Excludes reports whether the given relationship path is suppressed
func (rs Ruleset) Excludes(path string) bool {
	_, ok := rs.excluded[path]
	return ok
}

// Render serializes a single entity under the given ruleset.
func Render(n Node, rules Ruleset) map[string]interface{} {
	return renderAt(n, rules, "", 0)
}

// RenderList serializes a list of entities under the given ruleset.
// The result is never nil, so empty collections encode as [] rather than null.
func RenderList[N Node](nodes []N, rules Ruleset) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, renderAt(n, rules, "", 0))
	}
	return out
}

func renderAt(n Node, rules Ruleset, prefix string, depth int) map[string]interface{} {
	out := n.Fields()

	if depth >= maxDepth {
		return out
	}

	for name, rel := range n.Relations() {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if rules.Excludes(path) {
			continue
		}

		switch v := rel.(type) {
		case Node:
			out[name] = renderAt(v, rules, path, depth+1)
		case []interface{}:
			items := make([]map[string]interface{}, 0, len(v))
			for _, item := range v {
				child, ok := item.(Node)
				if !ok {
					continue
				}
				items = append(items, renderAt(child, rules, path, depth+1))
			}
			out[name] = items
		}
	}

	return out
}
