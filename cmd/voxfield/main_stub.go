//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of voxfield requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/voxfield`, or try the terminal viewer: `go run ./cmd/voxfield-term`.")
	os.Exit(2)
}
