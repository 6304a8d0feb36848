package shell

type killCommand struct{}

func (killCommand) Name() string {
	return "kill"
}

func (killCommand) Description() string {
	return "Terminate a process by ID"
}

func (killCommand) ValidateArgs(args []string) error {
	return requireArgs(args, "kill [process_id]")
}

func (killCommand) Execute(s *Session, args []string) (string, error) {
	return signalProcess("kill", args[0], "terminated", s.procs.Terminate)
}

func init() {
	registerCommand(killCommand{})
}
