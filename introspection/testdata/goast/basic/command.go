package domain

import (
	"time"

	"github.com/0rca/buildergen/optional"
)

//buildergen:builder
type Command struct {
	Executable string
	Args, Env  []string
	CurrentDir optional.Option[string]
}

type (
	//buildergen:builder
	Job struct {
		Name    string
		Timeout optional.Option[time.Duration]
		Labels  map[string]string
	}

	Pair[K comparable, V any] struct {
		Key   K
		Value V
	}
)

type Unmarked struct {
	ID int
}

type Wrapped struct {
	Unmarked
	Both Pair[string, int]
}

type Color int

type Runner interface {
	Run() error
}
