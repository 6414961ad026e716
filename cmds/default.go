package cmds

import "os"

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

// Execute runs the default executor over args, exiting on error. Arguments
// not matching any defined command are returned in order.
func Execute(args []string) []string {
	if err := defaultExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
	return defaultExecutor.Rest
}
