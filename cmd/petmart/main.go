package main

import (
	"context"
	"fmt"

	"github.com/hatien/petmart/internal/adapter/auth"
	"github.com/hatien/petmart/internal/adapter/client/cart"
	"github.com/hatien/petmart/internal/adapter/config"
	"github.com/hatien/petmart/internal/adapter/gateway/momo"
	"github.com/hatien/petmart/internal/adapter/gateway/vietqr"
	"github.com/hatien/petmart/internal/adapter/gateway/vnpay"
	"github.com/hatien/petmart/internal/adapter/handler/http"
	"github.com/hatien/petmart/internal/adapter/logger"
	"github.com/hatien/petmart/internal/adapter/storage"
	"github.com/hatien/petmart/internal/adapter/storage/repository"
	"github.com/hatien/petmart/internal/core/port"
	"github.com/hatien/petmart/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	cartClient, err := cart.NewClient(conf.Cart, log.Named("Cart"))
	if err != nil {
		log.Error("cart client creating error", zap.Error(err))
		return
	}

	vnpayAdapter, err := vnpay.New(conf.VNPay, log.Named("VNPay"))
	if err != nil {
		log.Error("vnpay adapter creating error", zap.Error(err))
		return
	}
	momoAdapter, err := momo.New(conf.MoMo, log.Named("MoMo"))
	if err != nil {
		log.Error("momo adapter creating error", zap.Error(err))
		return
	}
	qrGenerator := vietqr.New(conf.Bank)

	svc, err := service.NewService(repo, cartClient, qrGenerator,
		[]port.GatewayAdapter{vnpayAdapter, momoAdapter}, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, cartClient, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, orderHandler, paymentHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
