package cmds

import (
	"fmt"
	"reflect"
)

// Command is either a function taking its arguments from the following
// command line words, or a set of sub commands, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	Hidden      bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Hide omits the command from usage.
func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

// Func wraps fn as a command. fn may return nothing or an error; arguments
// are converted from strings, and pointer arguments are optional.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("command must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("command must return at most one value, got %v", fnType))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
