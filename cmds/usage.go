package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// PrintUsage writes every defined command with its aliases and description,
// sub commands indented under their parent.
func (p *Executor) PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "usage:\n")
	names := slices.Clone(p.names)
	slices.Sort(names)
	printCommands(w, 1, names, p.commands)
}

func printCommands(w io.Writer, depth int, names []string, commands map[string]*Command) {
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || command.Hidden {
			continue
		}
		line := indent + strings.Join(append([]string{name}, command.Aliases...), ", ")
		if command.Func.IsValid() {
			for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
				line += " <" + command.Func.Type().In(i).String() + ">"
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			subNames := make([]string, 0, len(command.Subs))
			for subName := range command.Subs {
				subNames = append(subNames, subName)
			}
			slices.Sort(subNames)
			printCommands(w, depth+1, subNames, command.Subs)
		}
	}
}
