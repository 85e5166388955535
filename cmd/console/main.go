package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/drivers/logger"
	"dentaldesk-service/internal/client/api"
	"dentaldesk-service/internal/client/recordstore"
	"dentaldesk-service/internal/pkg/dto/requests"
)

// A headless driver for the client core: logs in, loads the patient
// collection, walks the selection through every patient, and prints what a
// renderer would see. Useful for poking at a running instance without a
// browser.
func main() {
	baseURL := envOr("CONSOLE_BASE_URL", "http://localhost:8000")
	email := os.Getenv("CONSOLE_EMAIL")
	password := os.Getenv("CONSOLE_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("CONSOLE_EMAIL and CONSOLE_PASSWORD are required")
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	client, err := api.NewClient(baseURL, zapLogger)
	if err != nil {
		log.Fatalf("failed to build api client: %v", err)
	}

	ctx := context.Background()

	login, err := client.Login(ctx, &requests.Login{Email: email, Password: password})
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	fmt.Printf("logged in as %s %s <%s>\n", login.User.Firstname, login.User.Lastname, login.User.Email)

	store := recordstore.NewStore(client, zapLogger)
	if err := store.LoadPatients(ctx, login.User.ID); err != nil {
		log.Fatalf("loading patients failed: %v", err)
	}
	store.Wait()

	snapshot := store.Snapshot()
	fmt.Printf("%d patients\n", len(snapshot.Patients))

	for _, patient := range snapshot.Patients {
		p := patient
		store.Select(ctx, &p)
		store.Wait()
		printPatient(store)
	}

	if err := client.Logout(ctx); err != nil {
		log.Fatalf("logout failed: %v", err)
	}
}

func printPatient(store *recordstore.Store) {
	snapshot := store.Snapshot()
	if snapshot.Selected == nil {
		return
	}

	fmt.Printf("\n== %s ==\n", store.Label(snapshot.Selected.ID))
	if snapshot.Biodata == nil {
		fmt.Println("  biodata: none")
	} else {
		fmt.Printf("  biodata: %s %s\n", snapshot.Biodata.FirstName, snapshot.Biodata.LastName)
	}
	fmt.Printf("  visits: %d\n", len(snapshot.Visits))
	for _, planner := range snapshot.Planners {
		fmt.Printf("  plan: [%s] %s\n", planner.Status, planner.Title)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
