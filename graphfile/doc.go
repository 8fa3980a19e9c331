// Package graphfile reads and writes graph documents: the
// {nodes, edges, parameters} shape accepted by the rank command.
//
// A document is decoded with gopkg.in/yaml.v3, which also accepts the legacy
// JSON form because JSON is a YAML flow mapping:
//
//	{"nodes": ["A", "B", 3],
//	 "edges": [["A", "B"], ["B", 3]],
//	 "parameters": {"damping": 0.85, "tolerance": 1e-6, "max_iterations": 100}}
//
// Scalar node labels (strings, numbers, booleans) are kept verbatim as text,
// so 3 and "3" name the same vertex. A null or non-scalar label, as a node
// or inside an edge, fails decoding with ErrBadLabel. Unknown keys, such as
// visualization settings from older documents, are ignored.
//
// Building a Graph:
//
//   - Nodes are registered in document order, which fixes their indices.
//   - An edge entry that is not a two-element list is skipped with a warning.
//   - An edge naming an undeclared node fails with core.ErrUnknownNode.
//   - A document without edges is valid; a warning is logged.
package graphfile
