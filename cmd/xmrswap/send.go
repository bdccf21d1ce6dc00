package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/xmrrpc"
)

var send = cli.Command{
	Name:  "send",
	Usage: "create an unrelayed transfer and print its metadata",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "to",
			Usage:    "destination address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "amount in XMR, e.g. 1.5",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "priority",
			Usage: "fee priority, 0 (default) to 3 (elevated)",
		},
	},
	Action: sendAction,
}

var relay = cli.Command{
	Name:  "relay",
	Usage: "broadcast a transfer created with send",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "metadata",
			Usage:    "tx metadata returned by send",
			Required: true,
		},
	},
	Action: relayAction,
}

var checkproof = cli.Command{
	Name:  "checkproof",
	Usage: "verify a counterparty's spend proof",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "txid",
			Usage:    "transaction id the proof refers to",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "message",
			Usage: "optional challenge message bound to the proof",
		},
		&cli.StringFlag{
			Name:     "signature",
			Usage:    "the spend proof signature",
			Required: true,
		},
	},
	Action: checkproofAction,
}

func sendAction(ctx *cli.Context) error {
	svc, err := getWalletService(ctx)
	if err != nil {
		return err
	}

	amount, err := monetary.Parse(ctx.String("amount"), monetary.MoneroExponent)
	if err != nil {
		return err
	}

	res, err := svc.CreateTransfer(
		ctx.String("to"), amount, xmrrpc.SendPriority(ctx.Int("priority")),
	)
	if err != nil {
		return err
	}

	fmt.Printf("fee:      %s XMR\n", monetary.XMR(int64(res.Fee)))
	fmt.Printf("metadata: %s\n", res.TxMetadata)
	return nil
}

func relayAction(ctx *cli.Context) error {
	svc, err := getWalletService(ctx)
	if err != nil {
		return err
	}

	txID, err := svc.RelayTransfer(ctx.String("metadata"))
	if err != nil {
		return err
	}

	fmt.Println(txID)
	return nil
}

func checkproofAction(ctx *cli.Context) error {
	svc, err := getWalletService(ctx)
	if err != nil {
		return err
	}

	good, err := svc.VerifySpendProof(
		ctx.String("txid"), ctx.String("message"), ctx.String("signature"),
	)
	if err != nil {
		return err
	}

	if !good {
		return fmt.Errorf("spend proof is not valid for tx %s", ctx.String("txid"))
	}
	fmt.Println("valid")
	return nil
}
