// SPDX-License-Identifier: MIT

// Package linkedlist implements a generic singly linked list with
// positional operations.
//
// Ownership: the list owns its head node and every node owns the node after
// it. Nodes are never shared between lists; operations that splice lists
// together (MergeSorted) consume their inputs. Head hands out the first
// node for read-only walks; editing links through it is not supported.
//
// Positional operations validate the index and return ErrIndexOutOfRange:
//
//	Insert(index, v)   valid for 0 <= index <= Len()
//	RemoveAt(index)    valid for 0 <= index <  Len()
//	Get(index)         valid for 0 <= index <  Len()
//
// Complexity: Prepend and operations at index 0 are O(1); Append keeps a tail
// pointer and is O(1); everything else walks the chain in O(n).
package linkedlist
