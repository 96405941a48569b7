package utils

// FindIndex returns the index of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i := range slice {
		if slice[i] == item {
			return i
		}
	}
	return -1
}

// Count returns how many elements of slice equal item.
func Count[T comparable](slice []T, item T) int {
	n := 0
	for i := range slice {
		if slice[i] == item {
			n++
		}
	}
	return n
}
