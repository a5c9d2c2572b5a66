package i

// Logger writes pre-formatted messages at three levels.
type Logger interface {
	Info(string)
	Warn(string)
	Error(string)
}
