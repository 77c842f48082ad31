//go:build ignore

package main

//buildergen:builder
type Helper struct {
	Name string
}

func main() {}
