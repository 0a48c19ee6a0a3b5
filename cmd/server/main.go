package main

import (
	"fmt"
	"log"

	"invoiceflow/internal/backup"
	"invoiceflow/internal/config"
	"invoiceflow/internal/handler"
	"invoiceflow/internal/port"
	"invoiceflow/internal/router"
	"invoiceflow/internal/sequence"
	"invoiceflow/internal/service"
	filestorage "invoiceflow/internal/storage/file"
	"invoiceflow/internal/storage/memory"
	pgstorage "invoiceflow/internal/storage/postgres"
	"invoiceflow/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	kv, cleanup, err := openStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer cleanup()

	// Initialize stores
	invoices := store.NewInvoices(kv)
	clients := store.NewClients(kv)
	products := store.NewProducts(kv)
	settings := store.NewSettings(kv)
	seq := sequence.New(kv, store.KeyLastInvoiceNumber)
	codec := backup.New(kv)

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoices, settings, seq)
	clientSvc := service.NewClientService(clients)
	productSvc := service.NewProductService(products)
	settingsSvc := service.NewSettingsService(settings)
	backupSvc := service.NewBackupService(codec)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	clientH := handler.NewClientHandler(clientSvc)
	productH := handler.NewProductHandler(productSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	backupH := handler.NewBackupHandler(backupSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, invoiceH, clientH, productH, settingsH, backupH, healthH)

	log.Printf("Server starting on %s (storage driver: %s)", cfg.Server.Port, cfg.Storage.Driver)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func openStorage(cfg *config.Config) (port.KVStore, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return memory.New(), func() {}, nil

	case "file":
		s, err := filestorage.Open(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil

	case "postgres":
		db, err := pgstorage.NewDB(&cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return pgstorage.NewStore(db), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
