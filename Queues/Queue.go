package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	// Pop the head item. Returns EmptyQueueError when the queue is empty.
	Pop() (T, error)
	// Peek the head item without removing it. The zero value of T is returned
	// when the queue is empty.
	Peek() T
	Empty() bool
	Size() uint
	Clear()
}

// Stack is a LIFO container. Push and Pop work on the same end.
type Stack[T any] interface {
	Push(item T)
	// Pop the top item. Returns EmptyStackError when the stack is empty.
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}

// UnexpectedError reports an element of the wrong dynamic type found in a
// backing container.
type UnexpectedError struct {
	msg string
}

func (e *UnexpectedError) Error() string {
	return e.msg
}
