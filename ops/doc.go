// Package ops implements the composite (L4) graph operations: building
// blocks assembled from core's single-node/single-edge primitives, never
// graph-theoretic algorithms. Every function here is expressible purely in
// terms of core.Graph's public surface; none reaches into core's internals.
package ops
