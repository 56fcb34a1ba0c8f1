package main

import (
	"context"
	"log"
	"os"

	"construction_estimation/internal/adapter/mcp"
	"construction_estimation/internal/adapter/persistence/repository"
	"construction_estimation/internal/infrastructure/database"
	"construction_estimation/internal/seed"
	"construction_estimation/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// stdout carries the protocol; all diagnostics go to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("[mcp] ")

	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	clientRepo := repository.NewClientDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)

	if err := seed.Run(ctx, clientRepo, estimateRepo, invoiceRepo); err != nil {
		log.Printf("sample data seeding skipped: %v", err)
	}

	clients := usecase.NewClientUseCase(clientRepo)
	estimates := usecase.NewEstimateUseCase(estimateRepo, clientRepo)
	invoices := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, estimateRepo)

	tools := mcp.NewToolset(clients, estimates, invoices, os.Getenv("API_BASE_URL"))
	server := mcp.NewServer(os.Stdin, os.Stdout, tools)

	log.Println("construction estimation tool server listening on stdio")
	if err := server.Run(ctx); err != nil {
		log.Fatalf("tool server stopped: %v", err)
	}
}
