// Package modules defines the web module registry.
package modules

import module "github.com/foodgram/foodgram/internal/services/web/module"

// Module aliases the module interface contract.
type Module = module.Module
