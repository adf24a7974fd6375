package yamlparse

import "errors"

// ErrParse is the sentinel wrapped by every error [Parse] returns, whether
// the failure originated in goccy/go-yaml's grammar or in this adapter's
// conversion to node.Node.
var ErrParse = errors.New("yamlparse: invalid yaml")
