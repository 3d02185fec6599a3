package leave

import "errors"

var (
	ErrLeaveNotFound       = errors.New("Leave request not found")
	ErrLeaveAlreadyDecided = errors.New("Leave request already decided")
	ErrInvalidTransition   = errors.New("Leave status transition not permitted")
)
