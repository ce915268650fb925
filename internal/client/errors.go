package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid arguments")
)

const usage = `usage:
  syncctl id
  syncctl token <userID>
  syncctl push  <userID> <clientGroupID> <clientID> <mutationID> <mutationName> [argsJSON]
  syncctl pull  <userID> <clientGroupID> [cookieOrder]`
