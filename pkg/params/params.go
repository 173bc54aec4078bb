package params

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Params selects the target of a command: a network ordinal and a node
// ordinal within that network.
type Params struct {
	Net  int
	Node int
}

// Default targets node 1 of net 1.
var Default = Params{Net: 1, Node: 1}

// Parse resolves a target from trailing command arguments of the form
// key=value. Recognized keys are "net" and "node"; both default to 1.
// Unrecognized keys and arguments without "=" are ignored. A repeated key
// is last-write-wins. Values must be positive integers.
func Parse(args []string) (Params, error) {
	p := Default
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			continue
		}
		switch key {
		case "net":
			n, err := parseOrdinal(key, value)
			if err != nil {
				return Params{}, err
			}
			p.Net = n
		case "node":
			n, err := parseOrdinal(key, value)
			if err != nil {
				return Params{}, err
			}
			p.Node = n
		}
	}
	return p, nil
}

// Split separates target selectors (key=value arguments) from the real
// positional arguments of a command. The selectors are parsed with Parse.
func Split(args []string) (selectors []string, positionals []string) {
	for _, arg := range args {
		if strings.Contains(arg, "=") {
			selectors = append(selectors, arg)
		} else {
			positionals = append(positionals, arg)
		}
	}
	return selectors, positionals
}

func parseOrdinal(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, xerrors.Errorf("invalid %v ordinal %q: expected a positive integer", key, value)
	}
	if n < 1 {
		return 0, xerrors.Errorf("invalid %v ordinal %v: must be positive", key, n)
	}
	return n, nil
}
