package providers

import (
	"fmt"
	"github.com/gookit/validate"
	"globalpass/internal/structures"
)

// CnfValidator checks the loaded config against the struct validation tags.
// Startup is the only place allowed to fail loudly on bad input.
type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid configuration: %s", v.Errors.One())
	}
	return nil
}
