package shell

type clearCommand struct{}

func (clearCommand) Name() string {
	return "clear"
}

func (clearCommand) Description() string {
	return "Clear the screen"
}

func (clearCommand) ValidateArgs(args []string) error {
	return nil
}

func (clearCommand) Execute(s *Session, args []string) (string, error) {
	s.clearRequested = true
	return "", nil
}

func init() {
	registerCommand(clearCommand{})
}
