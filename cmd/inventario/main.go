package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/tu-usuario/gestor-inventario/internal/application/controller"
	"github.com/tu-usuario/gestor-inventario/internal/application/store"
	"github.com/tu-usuario/gestor-inventario/internal/infrastructure/api"
	"github.com/tu-usuario/gestor-inventario/internal/interfaces/console"
	"github.com/tu-usuario/gestor-inventario/pkg/config"
	"github.com/tu-usuario/gestor-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando cliente")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, log)

	products := store.New("productos", gw.ListProducts, log)
	users := store.New("usuarios", gw.ListUsers, log)
	sales := store.New("ventas", gw.ListSales, log)

	ui := console.New(os.Stdin, os.Stdout)
	prodCtrl := controller.NewProductController(gw, products, ui, log)
	userCtrl := controller.NewUserController(gw, users, ui, log)
	saleCtrl := controller.NewSaleController(gw, sales, ui, log)
	ui.Bind(prodCtrl, userCtrl, saleCtrl, products, users, sales)

	// Carga inicial: los tres fetch corren en paralelo, cada uno resuelve en
	// su propio store y una falla solo deja ese store vacío (queda en el log).
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); products.Load(ctx) }()
	go func() { defer wg.Done(); users.Load(ctx) }()
	go func() { defer wg.Done(); sales.Load(ctx) }()
	wg.Wait()

	ui.Run(ctx)
}
