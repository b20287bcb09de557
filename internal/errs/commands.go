package errs

import "fmt"

// UnknownCommandError Кастомная ошибка, сообщающая что mobile-команда не поддерживается.
type UnknownCommandError struct {
	Command   string
	Supported []string
}

func (uc *UnknownCommandError) Error() string {
	return fmt.Sprintf("Неизвестная команда `%s`. Поддерживаются: %v", uc.Command, uc.Supported)
}

func NewUnknownCommandError(command string, supported []string) *UnknownCommandError {
	return &UnknownCommandError{
		Command:   command,
		Supported: supported,
	}
}

// InvalidArgumentError Кастомная ошибка, сообщающая об отсутствующем или некорректном аргументе команды.
type InvalidArgumentError struct {
	Command  string
	Argument string
	Reason   string
}

func (ia *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Некорректный аргумент `%s` команды `%s`: %s", ia.Argument, ia.Command, ia.Reason)
}

func NewInvalidArgumentError(command, argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Command:  command,
		Argument: argument,
		Reason:   reason,
	}
}
