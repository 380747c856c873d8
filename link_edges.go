//go:build !without_edges

package main

import _ "github.com/agentuity/translator-check/translator/edges"
