package domain

import "github.com/0rca/buildergen/optional"

//buildergen:builder
type Command struct {
	Name    string
	Retries optional.Option[uint32]
}

type Ignored struct {
	ID int
}
