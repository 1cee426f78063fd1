package usecase

import "fmt"

// replyError carries a full sentence that is spoken back to the user
// verbatim, the same way the delivery layer wraps HTTP-facing messages in
// its own error type instead of bare fmt.Errorf strings.
type replyError string

func (e replyError) Error() string { return string(e) }

func replyErrorf(format string, args ...any) error {
	return replyError(fmt.Sprintf(format, args...))
}
