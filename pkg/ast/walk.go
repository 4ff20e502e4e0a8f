package ast

import (
	"github.com/ikey4u/concisemark/internal/logging"
)

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a depth-first pre-order traversal starting at root,
// visiting each parent before its children. If walkFunc returns a non-nil
// error the walk stops immediately and returns that error.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// TransformFunc is the function signature for Transform hooks.
// A hook typically rewrites node attributes in place, e.g. making an image
// source absolute before rendering.
type TransformFunc func(n *Node) error

// Transform applies hook to every node in pre-order. A hook error is logged
// and otherwise ignored: siblings and descendants of the failed node are
// still visited, and there is no cancellation mechanism. One misbehaving
// hook must not abort processing of the rest of a large document.
func Transform(root *Node, hook TransformFunc) {
	if root == nil || hook == nil {
		return
	}

	if err := hook(root); err != nil {
		logging.Default().Warn("transform hook failed",
			logging.FieldNode, root.Kind.String(),
			logging.FieldError, err,
		)
	}

	for _, child := range root.Children {
		Transform(child, hook)
	}
}

// FindAll returns all nodes matching the predicate, in pre-order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(root, func(n *Node) error {
		if predicate(n) {
			result = append(result, n)
		}
		return nil
	})

	return result
}

// FindByKind returns all nodes of the specified kind, in pre-order.
func FindByKind(root *Node, kind NodeKind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}
