package field

// BatchInvert sets a[i] = 1/a[i] for every i, using scratch as a buffer.
// scratch must be at least as long as a.
//
// It uses:
//
//	3*(n-1) multiplications
//	1 invert = ~265 multiplications
//
// Complexity: 3M*n + 262M
//
// If any a[i] is zero, every element of a is set to zero.
//
// https://en.wikipedia.org/wiki/Modular_multiplicative_inverse#Multiple_inverses
func BatchInvert(a, scratch []Element) {
	n := len(a)
	if n == 0 {
		return
	}
	if len(scratch) < n {
		panic("field: BatchInvert scratch buffer too short")
	}

	var t Element
	pa := new(Element).Set(&a[0]) // a[0]*a[1]*...*a[n]
	for i := 1; i < n; i++ {
		scratch[i].Set(pa)
		pa.Multiply(pa, &a[i])
	}

	paInv := new(Element).Invert(pa)

	for i := n - 1; i > 0; i-- {
		t.Multiply(paInv, &scratch[i])
		paInv.Multiply(paInv, &a[i])
		a[i].Set(&t)
	}
	a[0].Set(paInv)
}
