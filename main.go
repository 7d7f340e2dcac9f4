package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimasdaffa/fe-rembugwarga/app/config"
	"github.com/dimasdaffa/fe-rembugwarga/app/server"
)

func main() {
	cfg := config.Load()

	// Set global time zone; dates from the API are shown in local time
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Printf("Warning: Failed to load %s location, falling back to UTC+7: %v", cfg.TimeZone, err)
		time.Local = time.FixedZone("WIB", 7*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	app := server.New(cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server starting on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
