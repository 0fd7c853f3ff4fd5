package ports

// Notifier surfaces one-line, user-visible messages.
// It is distinct from Logger, which carries diagnostic detail.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
