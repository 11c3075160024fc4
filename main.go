package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/main18/Developers-Social-Network/app/config"
	"github.com/main18/Developers-Social-Network/app/repositories"
	"github.com/main18/Developers-Social-Network/app/routes"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("devsocial version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: devsocial <command>
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the social network API and client shell.

Configuration is taken from the environment (PORT, DB_PATH, JWT_SECRET,
TOKEN_TTL, BCRYPT_COST). JWT_SECRET is required.
`
	fmt.Println(helpText)
}

// serve loads configuration, opens the document store, and runs the HTTP
// server until it fails.
func serve() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, err := repositories.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	router := routes.SetupRoutes(repo, cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting server on %s", addr)
	if err := routes.StartServer(addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
