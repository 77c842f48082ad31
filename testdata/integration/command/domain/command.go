package domain

import (
	"time"

	"github.com/0rca/buildergen/optional"
)

// Command is a process invocation.
//
//buildergen:builder
type Command struct {
	Name    string
	Retries optional.Option[uint32]
}

//buildergen:builder
type Job struct {
	ID         string
	Args       []string
	Timeout    optional.Option[time.Duration]
	Labels     map[string]string
	CurrentDir optional.Option[string]
}

// Status is not annotated and gets no builder.
type Status struct {
	Code int
}
