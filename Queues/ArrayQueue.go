package Queues

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// ArrayQueue is a typed view over gods' array backed queue.
// The zero value is not usable; create it with MakeArrayQueue.
type ArrayQueue[T any] struct {
	content *arrayqueue.Queue
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

func MakeArrayQueue[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{arrayqueue.New()}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.content.Empty()
}

func (u *ArrayQueue[T]) Clear() {
	u.content.Clear()
}

func (u *ArrayQueue[T]) Size() uint {
	return uint(u.content.Size())
}

// Push item to the tail.
// Time: amortized O(1)
func (u *ArrayQueue[T]) Push(item T) {
	u.content.Enqueue(item)
}

// Pop [Queue.Pop]
// Time: O(1)
func (u *ArrayQueue[T]) Pop() (T, error) {
	v, ok := u.content.Dequeue()
	if !ok {
		return *new(T), &EmptyQueueError{}
	}
	return cast[T](v)
}

func (u *ArrayQueue[T]) Peek() T {
	if v, ok := u.content.Peek(); ok {
		if t, err := cast[T](v); err == nil {
			return t
		}
	}
	return *new(T)
}

// cast an element stored in an untyped gods container back to T.
func cast[T any](v interface{}) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	return *new(T), &UnexpectedError{fmt.Sprintf("unexpected element of type %T", v)}
}
