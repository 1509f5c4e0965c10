package ports

// Notifier is the shared sink for errors the user should see.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	Notify(err error)
}
