package logger

const colorBrightCyan = "\033[96m"

// ReqLogger prefixes log lines with the session ID of the request it serves,
// so the lines of one visitor's flow can be followed in the output.
type ReqLogger struct {
	sessionID string
}

// ForSession returns a logger scoped to the given session ID.
// An empty ID produces an unprefixed logger (anonymous visitor).
func ForSession(sessionID string) ReqLogger {
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}
	return ReqLogger{sessionID: sessionID}
}

func (l ReqLogger) prefix() string {
	if l.sessionID == "" {
		return ""
	}
	return colorBrightCyan + "[" + l.sessionID + "]" + colorReset
}

func (l ReqLogger) Infof(format string, args ...any) {
	Infof(l.prefix()+" "+format, args...)
}

func (l ReqLogger) Debugf(format string, args ...any) {
	Debugf(l.prefix()+" "+format, args...)
}

func (l ReqLogger) Warnf(format string, args ...any) {
	Warnf(l.prefix()+" "+format, args...)
}

func (l ReqLogger) Errorf(format string, args ...any) {
	Errorf(l.prefix()+" "+format, args...)
}
