package domain

//buildergen:builder
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

//buildergen:builder
type Point struct {
	X int
	Y int
}
