package main

import (
	"github.com/glazeapp/glaze/cmd"

	// Register the Windows backend. On other platforms no backend is
	// registered and the opacity surface reports unsupported.
	_ "github.com/glazeapp/glaze/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
