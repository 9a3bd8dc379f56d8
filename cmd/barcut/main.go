// barcut — 1D cutting plan optimizer for metal fabrication quoting
//
// Packs a cut list of piece lengths into stock bars with a kerf allowance
// per cut, reports waste, and prices the result.
//
// Build:
//   go build -o barcut ./cmd/barcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o barcut.exe ./cmd/barcut
//   GOOS=darwin  GOARCH=amd64 go build -o barcut-darwin ./cmd/barcut

package main

func main() {
	Execute()
}
