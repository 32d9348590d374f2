package commands

import (
	"github.com/go-playground/validator/v10"
)

// DeleteProductCommand asks for a product's dependent data to be cleaned
// up asynchronously. Deletion is acknowledged immediately; the cascade
// runs through the cleanup queue.
type DeleteProductCommand struct {
	ProductID string `validate:"required"`
}

var validate = validator.New()

// Validate validates the command
func (c DeleteProductCommand) Validate() error {
	return validate.Struct(c)
}
