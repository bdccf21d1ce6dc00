package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

var address = cli.Command{
	Name:   "address",
	Usage:  "print the primary address of the open wallet",
	Action: addressAction,
}

var balance = cli.Command{
	Name:   "balance",
	Usage:  "print the total and unlocked balance of the open wallet",
	Action: balanceAction,
}

var transfers = cli.Command{
	Name:   "transfers",
	Usage:  "list the wallet's transfers of the last 90 days",
	Action: transfersAction,
}

func addressAction(ctx *cli.Context) error {
	svc, err := getWalletService(ctx)
	if err != nil {
		return err
	}

	addr, err := svc.PrimaryAddress()
	if err != nil {
		return err
	}

	fmt.Println(addr)
	return nil
}

func balanceAction(ctx *cli.Context) error {
	svc, err := getWalletService(ctx)
	if err != nil {
		return err
	}

	balances, err := svc.Balances()
	if err != nil {
		return err
	}

	fmt.Printf("total:    %s XMR\n", balances.Total)
	fmt.Printf("unlocked: %s XMR\n", balances.Unlocked)
	return nil
}

func transfersAction(ctx *cli.Context) error {
	svc, err := getWalletService(ctx)
	if err != nil {
		return err
	}

	list, err := svc.RecentTransfers()
	if err != nil {
		return err
	}

	for _, t := range list {
		fmt.Printf(
			"%s  %-8s %s XMR  height=%d confirmations=%d\n",
			t.TxID, t.Type, monetary.XMR(int64(t.Amount)), t.Height,
			t.Confirmations,
		)
	}
	return nil
}
