// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package graph is a directed-acyclic-graph representation built for
// transitive reduction: Kahn's topological sort, stable adjacency
// ordering, and the sentinel errors shared by the bfl, tr, and pk2
// sub-packages.
//
// Representation
//
// A Graph stores nodes implicitly as slice indices of type NI and keeps
// both the outgoing and incoming adjacency for every node, so an edge
// can be removed from either endpoint without scanning the whole graph.
// There is no separate Node or Edge struct; callers refer to a node by
// its NI directly, the same convention the AdjacencyList family in this
// package's ancestor used.
//
// This package carries no notion of edge weight, vertex labels, or
// undirected graphs. See the bfl sub-package for the Bloom Formula
// Labeling reachability index, tr for the TR-B/TR-O/TR-O+ transitive
// reduction drivers, and pk2 for batch topological-order maintenance on
// edge insertion.
package graph
