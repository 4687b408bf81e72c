package tuple_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/parjoin/tuple"
)

func TestFlatten1(t *testing.T) {
	got := tuple.Flatten1(tuple.MkT1("x"))
	qt.Assert(t, qt.Equals(got, tuple.MkT1("x")))
}

func TestFlatten2(t *testing.T) {
	c := tuple.MkCons(1, tuple.MkT1("two"))
	qt.Assert(t, qt.Equals(tuple.Flatten2(c), tuple.MkT2(1, "two")))
}

func TestFlatten3(t *testing.T) {
	c := tuple.MkCons(1275, tuple.MkCons("abcabcabc", tuple.MkT1(uint64(40320))))
	a, b, d := tuple.Flatten3(c).T()
	qt.Assert(t, qt.Equals(a, 1275))
	qt.Assert(t, qt.Equals(b, "abcabcabc"))
	qt.Assert(t, qt.Equals(d, uint64(40320)))
}

func TestFlatten8(t *testing.T) {
	c := tuple.MkCons(int8(1),
		tuple.MkCons(int16(2),
			tuple.MkCons(int32(3),
				tuple.MkCons(int64(4),
					tuple.MkCons(uint8(5),
						tuple.MkCons(float32(6),
							tuple.MkCons(true,
								tuple.MkT1("8"))))))))
	got := tuple.Flatten8(c)
	qt.Assert(t, qt.Equals(got, tuple.MkT8(int8(1), int16(2), int32(3), int64(4), uint8(5), float32(6), true, "8")))
}

func TestFlattenPreservesOrder(t *testing.T) {
	// The nested form and flattened form must agree position by
	// position for every arity.
	n4 := tuple.MkCons("a", tuple.MkCons("b", tuple.MkCons("c", tuple.MkT1("d"))))
	qt.Assert(t, qt.Equals(tuple.Flatten4(n4), tuple.MkT4("a", "b", "c", "d")))

	n5 := tuple.MkCons(5, tuple.MkCons(4, tuple.MkCons(3, tuple.MkCons(2, tuple.MkT1(1)))))
	qt.Assert(t, qt.Equals(tuple.Flatten5(n5), tuple.MkT5(5, 4, 3, 2, 1)))

	n6 := tuple.Nest6(tuple.MkT6(0, 1, 2, 3, 4, 5))
	qt.Assert(t, qt.Equals(n6.Head, 0))
	qt.Assert(t, qt.Equals(n6.Tail.Tail.Tail.Tail.Tail, tuple.MkT1(5)))
	qt.Assert(t, qt.Equals(tuple.Flatten6(n6), tuple.MkT6(0, 1, 2, 3, 4, 5)))
}

func TestNestInverse(t *testing.T) {
	t1 := tuple.MkT1(1)
	qt.Assert(t, qt.Equals(tuple.Flatten1(tuple.Nest1(t1)), t1))
	t2 := tuple.MkT2(1, "b")
	qt.Assert(t, qt.Equals(tuple.Flatten2(tuple.Nest2(t2)), t2))
	t3 := tuple.MkT3(1, "b", 'c')
	qt.Assert(t, qt.Equals(tuple.Flatten3(tuple.Nest3(t3)), t3))
	t4 := tuple.MkT4(1, "b", 'c', 4.0)
	qt.Assert(t, qt.Equals(tuple.Flatten4(tuple.Nest4(t4)), t4))
	t5 := tuple.MkT5(1, "b", 'c', 4.0, false)
	qt.Assert(t, qt.Equals(tuple.Flatten5(tuple.Nest5(t5)), t5))
	t6 := tuple.MkT6(1, "b", 'c', 4.0, false, uint(6))
	qt.Assert(t, qt.Equals(tuple.Flatten6(tuple.Nest6(t6)), t6))
	t7 := tuple.MkT7(1, "b", 'c', 4.0, false, uint(6), int8(7))
	qt.Assert(t, qt.Equals(tuple.Flatten7(tuple.Nest7(t7)), t7))
	t8 := tuple.MkT8(1, "b", 'c', 4.0, false, uint(6), int8(7), []byte("8"))
	got := tuple.Flatten8(tuple.Nest8(t8))
	qt.Assert(t, qt.DeepEquals(got, t8))
}

func TestNestShape(t *testing.T) {
	n := tuple.Nest3(tuple.MkT3("x", 2, 3.5))
	head, rest := n.T()
	qt.Assert(t, qt.Equals(head, "x"))
	second, last := rest.T()
	qt.Assert(t, qt.Equals(second, 2))
	qt.Assert(t, qt.Equals(last, tuple.MkT1(3.5)))
}

func TestTupleFields(t *testing.T) {
	x := tuple.MkT7("a", 1, 2.5, true, 'r', uint16(9), []int{1})
	qt.Assert(t, qt.Equals(x.A0, "a"))
	qt.Assert(t, qt.Equals(x.A3, true))
	qt.Assert(t, qt.DeepEquals(x.A6, []int{1}))
	a0, a1, a2, a3, a4, a5, a6 := x.T()
	qt.Assert(t, qt.Equals(fmt.Sprint(a0, a1, a2, a3, a4, a5, a6), "a 1 2.5 true 114 9 [1]"))
}

func TestMaxArity(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.MaxArity, 8))
}

func ExampleFlatten3() {
	nested := tuple.MkCons(1, tuple.MkCons("two", tuple.MkT1(3.0)))
	fmt.Println(tuple.Flatten3(nested).T())
	// Output:
	// 1 two 3
}
