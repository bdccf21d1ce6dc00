package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/application"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/xmrrpc"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "xmrswap operator CLI"
	app.Usage = "Command line interface for the monero wallet daemon behind xmrswapd"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "rpc_host",
			Usage: "host of the monero-wallet-rpc daemon",
			Value: "127.0.0.1",
		},
		&cli.IntFlag{
			Name:  "rpc_port",
			Usage: "port of the monero-wallet-rpc daemon",
			Value: 29088,
		},
		&cli.StringFlag{
			Name:  "rpc_user",
			Usage: "rpc login username",
		},
		&cli.StringFlag{
			Name:  "rpc_password",
			Usage: "rpc login password",
		},
		&cli.StringFlag{
			Name:  "network",
			Usage: "monero network: mainnet, stagenet or testnet",
			Value: string(xmrrpc.Stagenet),
		},
	}
	app.Commands = append(
		app.Commands,
		&address,
		&balance,
		&transfers,
		&send,
		&relay,
		&checkproof,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func getWalletService(ctx *cli.Context) (application.WalletService, error) {
	walletCli, err := xmrrpc.NewClient(xmrrpc.Config{
		Host:     ctx.String("rpc_host"),
		Port:     ctx.Int("rpc_port"),
		Username: ctx.String("rpc_user"),
		Password: ctx.String("rpc_password"),
		Network:  xmrrpc.Network(ctx.String("network")),
	})
	if err != nil {
		return nil, err
	}
	if err := walletCli.ValidateNetwork(); err != nil {
		return nil, err
	}
	return application.NewWalletService(walletCli), nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[xmrswap] %v\n", err)
	os.Exit(1)
}
