//go:build !without_nodes

package main

import _ "github.com/agentuity/translator-check/translator/nodes"
