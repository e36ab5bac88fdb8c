package domain

import "errors"

var ErrInvalidNodeToken = errors.New("invalid node token, expected 'id:name'")
