package inventory

import "github.com/0rca/buildergen/optional"

//buildergen:builder
type Item struct {
	SKU      string
	Quantity int
	Note     optional.Option[string]
}
