package window

import "fmt"

func ExampleHamming() {
	w, _ := Hamming(5, 1.0)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3], w[4])
	// Output:
	// 0.08 0.54 1.00 0.54 0.08
}

func ExampleApplyCoefficientsInPlace() {
	buf := []float64{1, 1, 1, 1, 1}
	w, _ := Hamming(5, 1.0)
	_ = ApplyCoefficientsInPlace(buf, w)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", buf[0], buf[1], buf[2], buf[3], buf[4])
	// Output:
	// 0.08 0.54 1.00 0.54 0.08
}
