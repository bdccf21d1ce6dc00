package inmemory

import "errors"

// ErrTradeNotFound is thrown when the requested trade id is unknown.
var ErrTradeNotFound = errors.New("trade not found")
