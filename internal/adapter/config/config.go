package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Cart     *Cart
	VNPay    *VNPay
	MoMo     *MoMo
	Bank     *Bank
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Cart struct {
	HostString string `env:"CART_SERVICE_ADDRESS"`
}

// VNPay holds merchant identity and the shared HMAC secret for the
// redirect gateway. Injected into the adapter, never read globally.
type VNPay struct {
	TmnCode    string `env:"VNPAY_TMN_CODE"`
	HashSecret string `env:"VNPAY_HASH_SECRET"`
	PayURL     string `env:"VNPAY_PAY_URL" envDefault:"https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"`
	ReturnURL  string `env:"VNPAY_RETURN_URL"`
}

type MoMo struct {
	PartnerCode string `env:"MOMO_PARTNER_CODE"`
	AccessKey   string `env:"MOMO_ACCESS_KEY"`
	SecretKey   string `env:"MOMO_SECRET_KEY"`
	PayURL      string `env:"MOMO_PAY_URL" envDefault:"https://test-payment.momo.vn/gw_payment/payment/qr"`
	ReturnURL   string `env:"MOMO_RETURN_URL"`
	NotifyURL   string `env:"MOMO_NOTIFY_URL"`
}

// Bank is the fixed routing info rendered into manual-transfer QR codes.
type Bank struct {
	BankCode      string `env:"BANK_CODE" envDefault:"970436"`
	AccountNumber string `env:"BANK_ACCOUNT_NUMBER"`
	AccountName   string `env:"BANK_ACCOUNT_NAME"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var cart Cart
	var vnpay VNPay
	var momo MoMo
	var bank Bank
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&cart.HostString, "c", "", "Cart service address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&cart)
	if err != nil {
		return nil, fmt.Errorf("error parsing cart config: %w", err)
	}
	err = env.Parse(&vnpay)
	if err != nil {
		return nil, fmt.Errorf("error parsing vnpay config: %w", err)
	}
	err = env.Parse(&momo)
	if err != nil {
		return nil, fmt.Errorf("error parsing momo config: %w", err)
	}
	err = env.Parse(&bank)
	if err != nil {
		return nil, fmt.Errorf("error parsing bank config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Cart:     &cart,
		VNPay:    &vnpay,
		MoMo:     &momo,
		Bank:     &bank,
		App:      &app,
	}

	return &config, nil
}
