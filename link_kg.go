//go:build !without_kg

package main

import _ "github.com/agentuity/translator-check/translator/kg"
