package Queues

import "github.com/emirpasic/gods/stacks/arraystack"

// ArrayStack is a typed view over gods' array backed stack.
// The zero value is not usable; create it with MakeArrayStack.
type ArrayStack[T any] struct {
	content *arraystack.Stack
}

var _ Stack[int] = (*ArrayStack[int])(nil)

func MakeArrayStack[T any]() *ArrayStack[T] {
	return &ArrayStack[T]{arraystack.New()}
}

func (u *ArrayStack[T]) Empty() bool {
	return u.content.Empty()
}

func (u *ArrayStack[T]) Clear() {
	u.content.Clear()
}

func (u *ArrayStack[T]) Size() uint {
	return uint(u.content.Size())
}

// Push item on top.
// Time: amortized O(1)
func (u *ArrayStack[T]) Push(item T) {
	u.content.Push(item)
}

// Pop [Stack.Pop]
// Time: O(1)
func (u *ArrayStack[T]) Pop() (T, error) {
	v, ok := u.content.Pop()
	if !ok {
		return *new(T), &EmptyStackError{}
	}
	return cast[T](v)
}

func (u *ArrayStack[T]) Peek() T {
	if v, ok := u.content.Peek(); ok {
		if t, err := cast[T](v); err == nil {
			return t
		}
	}
	return *new(T)
}
