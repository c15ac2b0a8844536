package ast

import (
	"unsafe"
)

// miniArena is a typed bump allocator for the node kinds a transform
// synthesizes most. Pointers handed out stay valid for the lifetime of
// the tree: a full chunk is never reused, only replaced by a fresh chunk
// 1.5x its size.
type miniArena[T any] struct {
	elementSize uintptr

	a     unsafe.Pointer
	len   uintptr
	index uintptr
}

func newArena[T any](startLen int) *miniArena[T] {
	if startLen < 2 {
		startLen = 2
	}
	var t T
	return &miniArena[T]{
		elementSize: unsafe.Sizeof(t),
		len:         uintptr(startLen),
		a:           unsafe.Pointer(&make([]T, startLen)[0]),
	}
}

func (a *miniArena[T]) make() *T {
	n := (*T)(unsafe.Add(a.a, a.index*a.elementSize))
	if a.index++; a.index == a.len {
		a.resize()
	}

	return n
}

//go:noinline
func (a *miniArena[T]) resize() {
	a.len += a.len >> 1 // 1.5x growth, integer math

	a.a = unsafe.Pointer(&make([]T, a.len)[0])
	a.index = 0
}

// alloc copies v into the arena and returns its address.
func (a *miniArena[T]) alloc(v T) *T {
	n := a.make()
	*n = v
	return n
}
