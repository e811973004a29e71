// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package world models the blocks world: object descriptors, spatial
// relations, world snapshots, and the physical laws that govern where
// objects may rest.
//
// # Architecture
//
// The package provides the leaf types everything else builds on:
//
//   - Object: immutable descriptor (form, size, color)
//   - World: the object catalog for one scene, keyed by stable IDs
//   - Snapshot: the mutable part of a scene (stacks, holding, arm)
//   - Relation: closed enumeration of spatial relations
//   - Allowed: the one authoritative physics predicate
//
// # Physics
//
// Allowed is pure and side-effect free. It is the single source of
// truth for physical legality: both the goal interpreter (when
// generating goal literals) and the state-space model (when generating
// drop edges) call the same function, so the rules cannot drift apart.
//
// # Immutability
//
// Object and World are read-only after construction. Snapshot values
// are never mutated in place: the derivation methods (MoveArm, Pick,
// Drop) return fresh snapshots that share the untouched column slices
// with their parent.
package world
