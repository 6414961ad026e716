package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintf(os.Stderr, "usage: woof [flags] [source ...]\n\n")

	names := make([]string, 0, len(p.commands))
	byCommand := make(map[*Command][]string)
	for name, command := range p.commands {
		byCommand[command] = append(byCommand[command], name)
	}
	seen := make(map[*Command]bool)
	for name, command := range p.commands {
		if seen[command] {
			continue
		}
		seen[command] = true
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		command := p.commands[name]
		aliases := byCommand[command]
		slices.Sort(aliases)
		fmt.Fprintf(os.Stderr, "  %s", strings.Join(aliases, ", "))
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "\n    \t%s", command.Description)
		}
		fmt.Fprintf(os.Stderr, "\n")
	}
}
