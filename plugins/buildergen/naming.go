package buildergen

import (
	"unicode"

	"github.com/99designs/gqlgen/codegen/templates"
)

const (
	receiverName   = "b"
	buildMethod    = "Build"
	fallbackParam  = "value"
	builderSuffix  = "Builder"
	factoryPrefix  = "New"
	errorsVariable = "errs"
)

func builderName(structName string) string {
	return structName + builderSuffix
}

func factoryName(structName string) string {
	return factoryPrefix + builderName(structName)
}

// setterName is the exported spelling of the field name.
func setterName(fieldName string) string {
	return firstUpper(fieldName)
}

// storageName is the unexported builder field, keyword-safe.
func storageName(fieldName string) string {
	return templates.ToGoPrivate(fieldName)
}

// paramName must not shadow the receiver or the optional package inside the setter.
func paramName(fieldName, qualifier string) string {
	name := storageName(fieldName)
	if name == receiverName || name == qualifier {
		return fallbackParam
	}
	return name
}

func firstUpper(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
