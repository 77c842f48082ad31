package domain

//buildergen:builder
type FromTest struct {
	Ignored string
}
