package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"inventaris/internal/config"
	"inventaris/internal/database"
	"inventaris/internal/domain"
	"inventaris/internal/logger"
	"inventaris/internal/repository"
	"inventaris/internal/service"

	"go.uber.org/zap"
)

func kodeList(list []*domain.Produk) []string {
	kode := make([]string, 0, len(list))
	for _, p := range list {
		kode = append(kode, p.Kode)
	}
	return kode
}

// report logs the inventory valuation and the products that need restocking
func report(ctx context.Context, inventaris service.ServiceInventaris, kategori service.ServiceKategori, log *zap.Logger) error {
	nilai, err := inventaris.HitungTotalNilaiInventaris(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute inventory value: %w", err)
	}

	stok, err := inventaris.HitungTotalStok(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute total stok: %w", err)
	}

	habis, err := inventaris.GetProdukStokHabis(ctx)
	if err != nil {
		return fmt.Errorf("failed to list out-of-stock produk: %w", err)
	}

	menipis, err := inventaris.GetProdukStokMenipis(ctx)
	if err != nil {
		return fmt.Errorf("failed to list low-stock produk: %w", err)
	}

	aktif, err := kategori.GetKategoriAktif(ctx)
	if err != nil {
		return fmt.Errorf("failed to list kategori: %w", err)
	}

	log.Info("Inventory report",
		zap.Float64("total_nilai", nilai),
		zap.Int("total_stok", stok),
		zap.Int("kategori_aktif", len(aktif)),
		zap.Strings("stok_habis", kodeList(habis)),
		zap.Strings("stok_menipis", kodeList(menipis)),
	)
	return nil
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting inventory report", zap.String("env", cfg.App.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	dbService, err := database.New(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer dbService.Close()

	health := dbService.Health()
	log.Info("Database health check", zap.Any("health", health))
	if health["status"] != "up" {
		log.Fatal("Database is not reachable")
	}

	if err := database.RunMigrations(dbService.DB(), cfg.App.MigrationsDir, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	inventaris := service.NewServiceInventaris(repository.NewProdukRepository(dbService.DB()), log)
	kategori := service.NewServiceKategori(repository.NewKategoriRepository(dbService.DB()), log)

	if err := report(ctx, inventaris, kategori, log); err != nil {
		log.Error("Inventory report failed", zap.Error(err))
		return
	}

	log.Info("Inventory report complete")
}
