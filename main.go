package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"medeasy/counter/internal/api"
	"medeasy/counter/internal/cart"
	"medeasy/counter/internal/config"
	"medeasy/counter/internal/database"
	"medeasy/counter/internal/ledger"
	"medeasy/counter/internal/migrations"
	"medeasy/counter/internal/purchaselog"
	"medeasy/counter/internal/seed"
	"medeasy/counter/internal/shell"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	catalog, skipped, err := seed.LoadFile(cfg.CatalogPath)
	if err != nil {
		fmt.Printf("Error loading medicines from file: %v\n", err)
	}
	for _, row := range skipped {
		fmt.Printf("Error parsing medicine data: %v\n", row)
	}
	log.Printf("loaded %d medicines from %s", len(catalog), cfg.CatalogPath)

	recorders := purchaselog.Multi{purchaselog.NewCSVLog(cfg.PurchaseLogPath)}
	var mirror *purchaselog.SQLStore
	if cfg.SalesDSN != "" {
		db, err := database.Connect(cfg.SalesDSN)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer db.Close()
		if err := migrations.Run(db); err != nil {
			log.Fatalf("%v", err)
		}
		mirror = purchaselog.NewSQLStore(db)
		recorders = append(recorders, mirror)
	}

	sales := ledger.New()
	engine := cart.New(catalog, sales, recorders)

	if cfg.HTTPPort != "" {
		var reader api.PurchaseReader
		if mirror != nil {
			reader = mirror
		}
		handler := api.New(sales, reader, cfg.Currency)
		go func() {
			log.Printf("MedEasy report server starting on :%s", cfg.HTTPPort)
			if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
				log.Printf("report server error: %v", err)
			}
		}()
	}

	if err := shell.New(os.Stdin, os.Stdout, engine, sales, cfg.Currency).Run(context.Background()); err != nil {
		log.Printf("session ended: %v", err)
	}
}
