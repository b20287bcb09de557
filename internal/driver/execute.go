package driver

import (
	"context"
	"sort"
	"strings"

	"github.com/trsv-dev/espresso-idling-bridge/internal/errs"
	"github.com/trsv-dev/espresso-idling-bridge/internal/idling"
	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
)

const mobilePrefix = "mobile:"

// Имена поддерживаемых mobile-команд.
const (
	CommandRegisterIdlingResources   = "registerIdlingResources"
	CommandUnregisterIdlingResources = "unregisterIdlingResources"
	CommandListIdlingResources       = "listIdlingResources"
	CommandWaitForUIThread           = "waitForUIThread"
)

type handlerFunc func(ctx context.Context, args map[string]any) (any, error)

// mobileCommand Описание mobile-команды: обязательные аргументы и обработчик.
type mobileCommand struct {
	required []string
	handler  handlerFunc
}

// Executor Диспетчер mobile-команд драйвера.
type Executor struct {
	manager  idling.Manager
	commands map[string]mobileCommand
}

// NewExecutor Конструктор Executor.
func NewExecutor(manager idling.Manager) *Executor {
	e := &Executor{manager: manager}

	e.commands = map[string]mobileCommand{
		CommandRegisterIdlingResources: {
			required: []string{"classNames"},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				return nil, e.manager.RegisterIdlingResources(ctx, args["classNames"].(string))
			},
		},
		CommandUnregisterIdlingResources: {
			required: []string{"classNames"},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				return nil, e.manager.UnregisterIdlingResources(ctx, args["classNames"].(string))
			},
		},
		CommandListIdlingResources: {
			handler: func(ctx context.Context, _ map[string]any) (any, error) {
				classNames, err := e.manager.ListIdlingResources(ctx)
				if err != nil {
					return nil, err
				}
				return classNames, nil
			},
		},
		CommandWaitForUIThread: {
			handler: func(ctx context.Context, _ map[string]any) (any, error) {
				return nil, e.manager.WaitForUIThread(ctx)
			},
		},
	}

	return e
}

// SupportedCommands Отсортированный список имён поддерживаемых команд.
func (e *Executor) SupportedCommands() []string {
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ExecuteMobile Выполняет mobile-команду. Допускается префикс "mobile:".
// Ошибки idling.Manager возвращаются без изменений.
func (e *Executor) ExecuteMobile(ctx context.Context, command string, args map[string]any) (any, error) {
	name := normalizeCommand(command)

	cmd, ok := e.commands[name]
	if !ok {
		logger.Log.Warn("Неизвестная mobile-команда", logger.String("command", command))
		return nil, errs.NewUnknownCommandError(command, e.SupportedCommands())
	}

	for _, arg := range cmd.required {
		v, present := args[arg]
		if !present {
			return nil, errs.NewInvalidArgumentError(name, arg, "обязательный аргумент отсутствует")
		}
		if _, isString := v.(string); !isString {
			return nil, errs.NewInvalidArgumentError(name, arg, "аргумент должен быть строкой")
		}
	}

	logger.Log.Debug("Выполнение mobile-команды", logger.String("command", name))

	return cmd.handler(ctx, args)
}

// normalizeCommand Убирает префикс "mobile:" и пробелы вокруг имени команды.
func normalizeCommand(command string) string {
	name := strings.TrimSpace(command)
	name = strings.TrimPrefix(name, mobilePrefix)

	return strings.TrimSpace(name)
}
