//go:build !without_tom

package main

import _ "github.com/agentuity/translator-check/translator/tom"
