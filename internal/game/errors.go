package game

import "errors"

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrEmptyName       = errors.New("empty name")
	ErrNoExit          = errors.New("no exit that way")
	ErrNothingHere     = errors.New("nothing to grab here")
	ErrNoSuchItem      = errors.New("no such item")
	ErrDaemonGrab      = errors.New("baby daemon cannot be grabbed")
	ErrInventoryFull   = errors.New("inventory full")
	ErrBadSlot         = errors.New("bad inventory slot")
	ErrEmptySlot       = errors.New("slot is empty")
	ErrRefused         = errors.New("the monster refuses that offering")
	ErrWrongRoom       = errors.New("wrong room for that")
	ErrNothingToRescue = errors.New("nothing to rescue")
	ErrStillRunning    = errors.New("system still running")
)
