package shell

type pwdCommand struct{}

func (pwdCommand) Name() string {
	return "pwd"
}

func (pwdCommand) Description() string {
	return "Print the current directory"
}

func (pwdCommand) ValidateArgs(args []string) error {
	return nil
}

func (pwdCommand) Execute(s *Session, args []string) (string, error) {
	return s.cwd, nil
}

func init() {
	registerCommand(pwdCommand{})
}
