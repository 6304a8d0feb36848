package shell

import "fmt"

type startCommand struct{}

func (startCommand) Name() string {
	return "start"
}

func (startCommand) Description() string {
	return "Start a new process"
}

func (startCommand) ValidateArgs(args []string) error {
	return requireArgs(args, "start [process_name]")
}

func (startCommand) Execute(s *Session, args []string) (string, error) {
	p := s.procs.Spawn(args[0])
	return fmt.Sprintf("Started process %s with ID %d", p.Name, p.ID), nil
}

func init() {
	registerCommand(startCommand{})
}
