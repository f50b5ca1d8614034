// Package display implements the retained-mode scene tree.
//
// A Node owns an ordered sequence of child nodes. Insertion order is paint
// order. Every structural operation validates first, then mutates the
// sequence and parent back-references, then synchronizes the node's layer
// group, and only then emits notifications - listeners always observe the
// post-mutation state.
//
// The tree is a single-writer structure: all mutation and reads for a given
// tree must happen on one goroutine (typically the frame/update loop). No
// internal locking is performed. Structural mutation of the emitting tree
// from inside a notification listener is not supported.
package display
