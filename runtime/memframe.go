package runtime

import (
	"fmt"

	"github.com/npillmayer/pygo"
)

// This module implements a stack of call frames. Every call of a function
// pushes a frame, referencing the scope created for the call.

// CallFrame is a frame on the call stack.
type CallFrame struct {
	Name   string
	Scope  *Scope
	Parent *CallFrame
}

func (cf *CallFrame) String() string {
	return fmt.Sprintf("<frame %s -> %v>", cf.Name, cf.Scope)
}

// ---------------------------------------------------------------------------

// FrameStack is a call stack of frames.
type FrameStack struct {
	MaxDepth int
	tos      *CallFrame
	depth    int
}

// Depth returns the number of active frames.
func (fst *FrameStack) Depth() int {
	return fst.depth
}

// Push pushes a new frame as TOS. If pushing would exceed the maximum call
// depth, no frame is pushed and a RecursionError is returned.
//
func (fst *FrameStack) Push(nm string, scope *Scope) (*CallFrame, error) {
	if fst.MaxDepth > 0 && fst.depth >= fst.MaxDepth {
		T().Errorf("call depth of %d exceeded in %s", fst.MaxDepth, nm)
		return nil, pygo.Errorf(pygo.RecursionError, "maximum call depth %d exceeded calling %s",
			fst.MaxDepth, nm)
	}
	cf := &CallFrame{Name: nm, Scope: scope, Parent: fst.tos}
	fst.tos = cf
	fst.depth++
	T().Debugf("pushing call frame %s [%d]", nm, fst.depth)
	return cf, nil
}

// Pop pops the top-most frame. Returns the popped frame.
func (fst *FrameStack) Pop() *CallFrame {
	if fst.tos == nil {
		panic("attempt to pop frame from empty call stack")
	}
	cf := fst.tos
	T().Debugf("popping call frame %s [%d]", cf.Name, fst.depth)
	fst.tos = cf.Parent
	fst.depth--
	return cf
}
