package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/xmrswap-network/xmrswap-daemon/internal/config"
	"github.com/xmrswap-network/xmrswap-daemon/internal/core/application"
	dbbadger "github.com/xmrswap-network/xmrswap-daemon/internal/infrastructure/storage/db/badger"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/xmrrpc"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	walletCli, err := xmrrpc.NewClient(config.GetWalletRpcConfig())
	if err != nil {
		log.WithError(err).Fatal("could not set up the wallet daemon client")
	}
	if err := walletCli.ValidateNetwork(); err != nil {
		log.WithError(err).Fatal("wallet daemon network check failed")
	}
	log.Infof("connected to wallet daemon on %s network", config.GetNetwork())

	dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
	dbManager, err := dbbadger.NewDbManager(dbDir, nil)
	if err != nil {
		log.WithError(err).Fatal("could not open the trade db")
	}
	defer dbManager.Close()

	tradeRepo := dbbadger.NewTradeRepositoryImpl(dbManager)

	feeSvc := application.NewFeeService(application.FeeConfig{
		MakerFeePerCoin: int64(config.GetInt(config.MakerFeePerCoinKey)),
		TakerFeePerCoin: int64(config.GetInt(config.TakerFeePerCoinKey)),
		MinMakerFee:     int64(config.GetInt(config.MinMakerFeeKey)),
		MinTakerFee:     int64(config.GetInt(config.MinTakerFeeKey)),
	})
	logFeeSchedule(feeSvc)

	walletSvc := application.NewWalletService(walletCli)
	if addr, err := walletSvc.PrimaryAddress(); err == nil {
		log.Infof("primary wallet address: %s", addr)
	}

	trades, err := tradeRepo.GetAllTrades(context.Background())
	if err != nil {
		log.WithError(err).Fatal("could not read the trade db")
	}
	log.Infof("loaded %d known trades", len(trades))

	log.Debug("daemon is running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Debug("exiting")
}

func logFeeSchedule(feeSvc application.FeeService) {
	one := decimal.NewFromInt(1)
	makerFee, err := feeSvc.FeePerUnit(true, false, one)
	if err != nil {
		return
	}
	takerFee, err := feeSvc.FeePerUnit(false, false, one)
	if err != nil {
		return
	}
	log.Infof(
		"fee schedule: maker %s, taker %s per %s traded",
		makerFee, takerFee, monetary.XMR(monetary.OneCoin),
	)
}
