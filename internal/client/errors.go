package client

import "errors"

var errMissingDependency = errors.New("client app dependency is nil")
