// Package maxstack implements a stack of integers that reports its maximum in constant time.
package maxstack

import (
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/gostonefire/collections/internal/utils"
	"strconv"
	"strings"
)

// item - One pushed value together with the maximum of the stack below it
type item struct {
	data     int
	maxBelow int
}

// Stack - A LIFO stack of integers tracking its current maximum. The backing array starts at
// conf.MaxStackCapacity entries and doubles when full.
type Stack struct {
	items  []item
	n      int
	curMax int
}

// New - Returns a pointer to a new empty Stack
func New() *Stack {
	return &Stack{items: make([]item, conf.MaxStackCapacity)}
}

// Size - Returns the number of values on the stack
func (S *Stack) Size() int {
	return S.n
}

// IsEmpty - Returns true if the stack holds no values
func (S *Stack) IsEmpty() bool {
	return S.n == 0
}

// Push - Adds num to the top of the stack
func (S *Stack) Push(num int) {
	if S.n == len(S.items) {
		items := make([]item, utils.GrowCapacity(len(S.items)))
		copy(items, S.items)
		S.items = items
	}

	it := item{data: num, maxBelow: S.curMax}
	if S.n == 0 || num > S.curMax {
		S.curMax = num
	}

	S.items[S.n] = it
	S.n++
}

// Pop - Removes and returns the top value, restoring the maximum of the values below it.
// It returns errs.Underflow if the stack is empty.
func (S *Stack) Pop() (num int, err error) {
	if S.IsEmpty() {
		err = errs.NewUnderflow("stack")
		return
	}

	S.n--
	it := S.items[S.n]
	S.items[S.n] = item{}
	S.curMax = it.maxBelow

	return it.data, nil
}

// Max - Returns the largest value on the stack, or errs.Underflow if the stack is empty
func (S *Stack) Max() (num int, err error) {
	if S.IsEmpty() {
		err = errs.NewUnderflow("stack")
		return
	}

	return S.curMax, nil
}

// String - Returns the values from top to bottom separated by spaces
func (S *Stack) String() string {
	var sb strings.Builder
	for i := S.n - 1; i >= 0; i-- {
		sb.WriteString(strconv.Itoa(S.items[i].data))
		sb.WriteByte(' ')
	}

	return sb.String()
}
