// Command reset-data clears the persisted dataset. Administrative
// side-tool; the API never exposes this to end users.
package main

import (
	"log"
	"os"

	"go-agritrace/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Open the record store
	persistence, err := store.OpenSQLite(os.Getenv("AGRITRACE_DB_PATH"))
	if err != nil {
		log.Fatalf("Failed to open state database: %v", err)
	}
	defer persistence.Close()

	recordStore := store.Open(persistence)
	before := len(recordStore.Produce()) + len(recordStore.Events()) + len(recordStore.Listings())

	// 3. Clear and persist the empty state
	if err := recordStore.Clear(); err != nil {
		log.Fatalf("Failed to clear persisted data: %v", err)
	}

	log.Printf("Success! Cleared %d record(s); all collections are now empty", before)
}
