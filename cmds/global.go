package cmds

// GlobalExecutor holds the commands defined at package init time by the
// packages that make up a program.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func Fallback(command *Command) {
	GlobalExecutor.SetFallback(command)
}
