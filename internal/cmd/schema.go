package cmd

import (
	"os"

	"github.com/livingtree/prpcheck/internal/services"
)

// SchemaCmd prints the verdict JSON Schema
type SchemaCmd struct{}

// Run executes the schema command
func (s *SchemaCmd) Run(cli *CLI) error {
	return writeJSON(os.Stdout, services.VerdictSchema())
}
