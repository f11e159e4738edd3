// SPDX-License-Identifier: MIT

// Package collections provides the primitive sequential containers used by
// every higher layer of dsa: a LIFO Stack, a FIFO Queue, a fixed-capacity
// CircularQueue and a generic MinHeap.
//
// What:
//
//   - Stack[T]          push/pop/peek at the top, O(1) amortized.
//   - Queue[T]          enqueue at the back, dequeue from the front, O(1) amortized.
//   - CircularQueue[T]  ring buffer with a fixed capacity; Enqueue on a full
//     queue fails with ErrFull.
//   - MinHeap[T]        binary heap ordered by a caller-supplied less function;
//     the root is always the minimum between operations.
//   - QueueStack[T]     a Stacker built from two Queues; Pop and Peek are O(n).
//
// Contract violations fail loudly: Pop, Peek, Dequeue and Front on an empty
// container return ErrEmpty instead of a zero value. Callers check them with
// errors.Is.
//
// The package also carries the classic stack/queue exercises built on these
// containers: ValidParentheses, EvalRPN, DailyTemperatures and
// MaxSlidingWindow.
//
// Complexity:
//
//   - Stack, Queue, CircularQueue: O(1) per operation (amortized for the
//     slice-backed ones).
//   - MinHeap: O(log n) Push/Pop, O(1) Peek.
//
// None of the containers are safe for concurrent use; each instance belongs
// to the goroutine that created it.
package collections
