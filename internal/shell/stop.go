package shell

type stopCommand struct{}

func (stopCommand) Name() string {
	return "stop"
}

func (stopCommand) Description() string {
	return "Stop a process by ID"
}

func (stopCommand) ValidateArgs(args []string) error {
	return requireArgs(args, "stop [process_id]")
}

func (stopCommand) Execute(s *Session, args []string) (string, error) {
	return signalProcess("stop", args[0], "stopped", s.procs.Stop)
}

func init() {
	registerCommand(stopCommand{})
}
