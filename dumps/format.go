package dumps

import (
	"fmt"
	"slices"
	"strings"
)

type Format string

const (
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var Formats = []Format{
	FormatTree,
	FormatJSON,
	FormatYAML,
}

func ParseFormat(str string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(str)))
	if !slices.Contains(Formats, format) {
		return "", fmt.Errorf("unknown format %q", str)
	}
	return format, nil
}
