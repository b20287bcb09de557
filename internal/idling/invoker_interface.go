package idling

import "context"

//go:generate mockgen -destination=mocks/mock_manager.go -package=mocks . Manager

// Manager Интерфейс управления idling-ресурсами Espresso.
type Manager interface {
	RegisterIdlingResources(ctx context.Context, classNames string) error
	UnregisterIdlingResources(ctx context.Context, classNames string) error
	ListIdlingResources(ctx context.Context) ([]string, error)
	WaitForUIThread(ctx context.Context) error
}
