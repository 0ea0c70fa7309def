package config

import (
	"log"
	"os"
	"strconv"

	"medeasy/counter/domain"
)

// Config holds application configuration values.
type Config struct {
	CatalogPath     string
	PurchaseLogPath string
	Currency        string
	// SalesDSN enables the SQLite purchase mirror when set.
	SalesDSN string
	// HTTPPort enables the report endpoint when set.
	HTTPPort string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	catalog := os.Getenv("CATALOG_PATH")
	if catalog == "" {
		catalog = "medicines.txt"
	}

	purchaseLog := os.Getenv("PURCHASE_LOG_PATH")
	if purchaseLog == "" {
		purchaseLog = "purchase_history.csv"
	}

	currency := os.Getenv("CURRENCY_SYMBOL")
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	port := os.Getenv("HTTP_PORT")
	// Validate that port is numeric.
	if port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			log.Printf("invalid HTTP_PORT value %q, report endpoint disabled", port)
			port = ""
		}
	}

	return Config{
		CatalogPath:     catalog,
		PurchaseLogPath: purchaseLog,
		Currency:        currency,
		SalesDSN:        os.Getenv("SALES_DB_DSN"),
		HTTPPort:        port,
	}
}
