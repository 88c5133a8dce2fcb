package config

import (
	_ "embed"
)

//go:embed defaults/leaky.yaml
var defaultConfigYAML []byte
