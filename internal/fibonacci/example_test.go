package fibonacci

import "fmt"

// ExampleFib prints the first eleven Fibonacci numbers.
func ExampleFib() {
	for n := 0; n <= 10; n++ {
		v, _ := Fib(n)
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 0 1 1 2 3 5 8 13 21 34 55
}

// ExampleFibIndex shows the record variant.
func ExampleFibIndex() {
	v, _ := FibIndex(Index{N: 10})
	fmt.Println(v)
	// Output:
	// 55
}
