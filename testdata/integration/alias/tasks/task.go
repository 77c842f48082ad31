package tasks

import opt "github.com/0rca/buildergen/optional"

//buildergen:builder
type Task struct {
	Title   string
	Retries opt.Option[uint32]
}
