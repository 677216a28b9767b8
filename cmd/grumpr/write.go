package main

import (
	"fmt"

	"github.com/twoolhouse/grumpr-go/library"
)

// runWriteStage is unimplemented, matching the original CLI this chain
// was modelled on — its own write command carries nothing but a TODO.
func runWriteStage(lz *library.Librarian, args []string) error {
	return fmt.Errorf("grumpr: write is not yet implemented")
}
