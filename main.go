// Package main CampQuest API.
//
// @title           CampQuest API
// @version         1.0
// @description     Camping gear store (catalog, cart, orders, rentals, payments).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/KasunInd27/CampQuest-sub000/app/echoServer"
	authctrl "github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/auth"
	cartctrl "github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/cart"
	catalogctrl "github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/catalog"
	orderctrl "github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/order"
	paymentctrl "github.com/KasunInd27/CampQuest-sub000/app/echoServer/controller/payment"
	"github.com/KasunInd27/CampQuest-sub000/app/echoServer/validation"
	"github.com/KasunInd27/CampQuest-sub000/config"
	cartrepo "github.com/KasunInd27/CampQuest-sub000/repository/cart"
	"github.com/KasunInd27/CampQuest-sub000/repository/inventory"
	orderrepo "github.com/KasunInd27/CampQuest-sub000/repository/order"
	productrepo "github.com/KasunInd27/CampQuest-sub000/repository/product"
	storagerepo "github.com/KasunInd27/CampQuest-sub000/repository/storage"
	userrepo "github.com/KasunInd27/CampQuest-sub000/repository/user"
	authsvc "github.com/KasunInd27/CampQuest-sub000/service/auth"
	cartsvc "github.com/KasunInd27/CampQuest-sub000/service/cart"
	catalogsvc "github.com/KasunInd27/CampQuest-sub000/service/catalog"
	ordersvc "github.com/KasunInd27/CampQuest-sub000/service/order"
	paymentsvc "github.com/KasunInd27/CampQuest-sub000/service/payment"
	"github.com/KasunInd27/CampQuest-sub000/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// cart cache, falls back to a no-op when redis is not configured
	var cache cartrepo.Cache = cartrepo.NopCache{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, carts served from db only", "addr", cfg.RedisAddr, "err", err)
		} else {
			cache = cartrepo.NewRedisCache(rdb)
		}
	}

	// repos
	ur := userrepo.New(db)
	pr := productrepo.New(db)
	cr := cartrepo.New(db)
	or := orderrepo.New(db)
	ledger := inventory.NewPG(db)
	sr := storagerepo.NewHTTP(cfg.StorageURL, cfg.StorageAPIKey)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	cats := catalogsvc.New(pr)
	cs := cartsvc.New(cr, cache, pr)
	osvc := ordersvc.New(db, or, ledger, pr, cs, cfg.ShippingFee)
	ps := paymentsvc.New(db, or, sr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	catalogC := &catalogctrl.Controller{Svc: cats, V: v, Log: log}
	cartC := &cartctrl.Controller{Svc: cs, V: v, Log: log}
	orderC := &orderctrl.Controller{Svc: osvc, V: v, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New(v)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Catalog: catalogC,
		Cart:    cartC,
		Order:   orderC,
		Payment: paymentC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "env", cfg.Env, "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
