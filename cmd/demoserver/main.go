// Command demoserver starts a local server that simulates the targets a
// probe can meet: filter block pages, redirect chains, a redirect loop and
// a slow endpoint.
// Usage: go run ./cmd/demoserver [port]
// Default port: 9999
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/filtersight/filtersight/internal/demoserver"
)

func main() {
	cfg := demoserver.DefaultConfig()

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	fmt.Println("===========================================")
	fmt.Println("   FilterSight Demo Target Server")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Targets served:")
	fmt.Println("  /                     clean page")
	fmt.Println("  /blocked/goguardian   GoGuardian-style block page")
	fmt.Println("  /blocked/securly      Securly-style block page")
	fmt.Println("  /blocked/generic      vendor-less block page")
	fmt.Println("  /deny                 plain 403")
	fmt.Println("  /redirect/chain       two-hop redirect to /final")
	fmt.Println("  /redirect/loop        redirects forever")
	fmt.Println("  /redirect/broken      unresolvable Location header")
	fmt.Println("  /noct                 HEAD without Content-Type")
	fmt.Println("  /slow                 stalls past the probe timeout")
	fmt.Println()

	server := demoserver.NewDemoServer(cfg)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
