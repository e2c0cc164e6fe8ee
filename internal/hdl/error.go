package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")

var ErrMissingToken = errors.New("authentication credentials were not provided")
var ErrMalformedToken = errors.New("authorization header must be a bearer token")
