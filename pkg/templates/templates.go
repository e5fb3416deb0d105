// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application configuration.
//
//go:embed config.yaml
var ConfigYAML string

// RolesYAML contains an example of role definitions file.
//
//go:embed roles.yaml
var RolesYAML string
