package cli

import (
	"fmt"
	"os"

	"github.com/mvanholt/croon/internal/catalog"
)

// newCatalogClient builds a catalog client from the loaded config.
func newCatalogClient() *catalog.Client {
	c := catalog.New(cfg.Catalog.BaseURL)
	if Verbose() {
		c.SetVerbose(true, func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}
	return c
}
