package domain

// Add returns the sum of x and y.
func Add(x, y int) int {
	return x + y
}

// CheckPositive reports whether num is strictly greater than zero.
func CheckPositive(num int) bool {
	return num > 0
}
