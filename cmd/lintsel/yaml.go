package main

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAML reads flag defaults from a yaml file. Keys are flag names, with - or _ as separator, and
// may be nested by command:
//
//	ext: .py
//	check:
//	  join: first
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}

	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parsing configuration")
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}

		if parent != nil && parent.Command != nil {
			section, ok := values[parent.Command.Name].(map[string]any)
			if ok {
				if v, ok := lookup(section, names); ok {
					return v, nil
				}
			}
		}

		if v, ok := lookup(values, names); ok {
			return v, nil
		}

		return nil, nil
	}

	return f, nil
}

func lookup(values map[string]any, names []string) (any, bool) {
	for _, name := range names {
		v, ok := values[name]
		if !ok {
			continue
		}

		if _, isSection := v.(map[string]any); isSection {
			continue
		}

		return v, true
	}

	return nil, false
}
