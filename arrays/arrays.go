// Package arrays declares the fixed length array types that satisfy the
// arriter.Array capability, one type per supported length from 0 to 32.
//
// Go's type parameters cannot range over array lengths,
// so each supported length needs its own declared type.
// The method sets are trivial on purpose: Len reports the type's constant
// length, and At exposes the address of one element so the iterator can move
// the value out of the storage it owns.
package arrays

// Of0 is a fixed length array of 0 elements.
type Of0[T any] [0]T

func (a *Of0[T]) Len() int    { return 0 }
func (a *Of0[T]) At(i int) *T { return &a[i] }

// Of1 is a fixed length array of 1 element.
type Of1[T any] [1]T

func (a *Of1[T]) Len() int    { return 1 }
func (a *Of1[T]) At(i int) *T { return &a[i] }

// Of2 is a fixed length array of 2 elements.
type Of2[T any] [2]T

func (a *Of2[T]) Len() int    { return 2 }
func (a *Of2[T]) At(i int) *T { return &a[i] }

// Of3 is a fixed length array of 3 elements.
type Of3[T any] [3]T

func (a *Of3[T]) Len() int    { return 3 }
func (a *Of3[T]) At(i int) *T { return &a[i] }

// Of4 is a fixed length array of 4 elements.
type Of4[T any] [4]T

func (a *Of4[T]) Len() int    { return 4 }
func (a *Of4[T]) At(i int) *T { return &a[i] }

// Of5 is a fixed length array of 5 elements.
type Of5[T any] [5]T

func (a *Of5[T]) Len() int    { return 5 }
func (a *Of5[T]) At(i int) *T { return &a[i] }

// Of6 is a fixed length array of 6 elements.
type Of6[T any] [6]T

func (a *Of6[T]) Len() int    { return 6 }
func (a *Of6[T]) At(i int) *T { return &a[i] }

// Of7 is a fixed length array of 7 elements.
type Of7[T any] [7]T

func (a *Of7[T]) Len() int    { return 7 }
func (a *Of7[T]) At(i int) *T { return &a[i] }

// Of8 is a fixed length array of 8 elements.
type Of8[T any] [8]T

func (a *Of8[T]) Len() int    { return 8 }
func (a *Of8[T]) At(i int) *T { return &a[i] }

// Of9 is a fixed length array of 9 elements.
type Of9[T any] [9]T

func (a *Of9[T]) Len() int    { return 9 }
func (a *Of9[T]) At(i int) *T { return &a[i] }

// Of10 is a fixed length array of 10 elements.
type Of10[T any] [10]T

func (a *Of10[T]) Len() int    { return 10 }
func (a *Of10[T]) At(i int) *T { return &a[i] }

// Of11 is a fixed length array of 11 elements.
type Of11[T any] [11]T

func (a *Of11[T]) Len() int    { return 11 }
func (a *Of11[T]) At(i int) *T { return &a[i] }

// Of12 is a fixed length array of 12 elements.
type Of12[T any] [12]T

func (a *Of12[T]) Len() int    { return 12 }
func (a *Of12[T]) At(i int) *T { return &a[i] }

// Of13 is a fixed length array of 13 elements.
type Of13[T any] [13]T

func (a *Of13[T]) Len() int    { return 13 }
func (a *Of13[T]) At(i int) *T { return &a[i] }

// Of14 is a fixed length array of 14 elements.
type Of14[T any] [14]T

func (a *Of14[T]) Len() int    { return 14 }
func (a *Of14[T]) At(i int) *T { return &a[i] }

// Of15 is a fixed length array of 15 elements.
type Of15[T any] [15]T

func (a *Of15[T]) Len() int    { return 15 }
func (a *Of15[T]) At(i int) *T { return &a[i] }

// Of16 is a fixed length array of 16 elements.
type Of16[T any] [16]T

func (a *Of16[T]) Len() int    { return 16 }
func (a *Of16[T]) At(i int) *T { return &a[i] }

// Of17 is a fixed length array of 17 elements.
type Of17[T any] [17]T

func (a *Of17[T]) Len() int    { return 17 }
func (a *Of17[T]) At(i int) *T { return &a[i] }

// Of18 is a fixed length array of 18 elements.
type Of18[T any] [18]T

func (a *Of18[T]) Len() int    { return 18 }
func (a *Of18[T]) At(i int) *T { return &a[i] }

// Of19 is a fixed length array of 19 elements.
type Of19[T any] [19]T

func (a *Of19[T]) Len() int    { return 19 }
func (a *Of19[T]) At(i int) *T { return &a[i] }

// Of20 is a fixed length array of 20 elements.
type Of20[T any] [20]T

func (a *Of20[T]) Len() int    { return 20 }
func (a *Of20[T]) At(i int) *T { return &a[i] }

// Of21 is a fixed length array of 21 elements.
type Of21[T any] [21]T

func (a *Of21[T]) Len() int    { return 21 }
func (a *Of21[T]) At(i int) *T { return &a[i] }

// Of22 is a fixed length array of 22 elements.
type Of22[T any] [22]T

func (a *Of22[T]) Len() int    { return 22 }
func (a *Of22[T]) At(i int) *T { return &a[i] }

// Of23 is a fixed length array of 23 elements.
type Of23[T any] [23]T

func (a *Of23[T]) Len() int    { return 23 }
func (a *Of23[T]) At(i int) *T { return &a[i] }

// Of24 is a fixed length array of 24 elements.
type Of24[T any] [24]T

func (a *Of24[T]) Len() int    { return 24 }
func (a *Of24[T]) At(i int) *T { return &a[i] }

// Of25 is a fixed length array of 25 elements.
type Of25[T any] [25]T

func (a *Of25[T]) Len() int    { return 25 }
func (a *Of25[T]) At(i int) *T { return &a[i] }

// Of26 is a fixed length array of 26 elements.
type Of26[T any] [26]T

func (a *Of26[T]) Len() int    { return 26 }
func (a *Of26[T]) At(i int) *T { return &a[i] }

// Of27 is a fixed length array of 27 elements.
type Of27[T any] [27]T

func (a *Of27[T]) Len() int    { return 27 }
func (a *Of27[T]) At(i int) *T { return &a[i] }

// Of28 is a fixed length array of 28 elements.
type Of28[T any] [28]T

func (a *Of28[T]) Len() int    { return 28 }
func (a *Of28[T]) At(i int) *T { return &a[i] }

// Of29 is a fixed length array of 29 elements.
type Of29[T any] [29]T

func (a *Of29[T]) Len() int    { return 29 }
func (a *Of29[T]) At(i int) *T { return &a[i] }

// Of30 is a fixed length array of 30 elements.
type Of30[T any] [30]T

func (a *Of30[T]) Len() int    { return 30 }
func (a *Of30[T]) At(i int) *T { return &a[i] }

// Of31 is a fixed length array of 31 elements.
type Of31[T any] [31]T

func (a *Of31[T]) Len() int    { return 31 }
func (a *Of31[T]) At(i int) *T { return &a[i] }

// Of32 is a fixed length array of 32 elements.
type Of32[T any] [32]T

func (a *Of32[T]) Len() int    { return 32 }
func (a *Of32[T]) At(i int) *T { return &a[i] }
