package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/importer"
	"ecommerce-backend/internal/repository/category"
	"ecommerce-backend/internal/repository/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to product catalog CSV")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, product.NewPostgres(pool, nil), category.NewPostgres(pool))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
