// Command tiktok 通过 knside-out 节点游玩 tiktok 卡牌游戏
//
// 用法示例：
//
//	tiktok --config tiktok.toml purchase-box --wait
//	tiktok --config tiktok.toml boxes
//	tiktok --config tiktok.toml open-box --outpoint 0xa059...:1 --wait
//	tiktok --config tiktok.toml upload-program --card 0xd3cd...:1 --file card.lua
//	tiktok --config tiktok.toml start-battle --card 0x8361...:1 --card 0x8361...:2
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/weisyn/tiktok-sdk-go/client"
	"github.com/weisyn/tiktok-sdk-go/config"
	"github.com/weisyn/tiktok-sdk-go/services/tiktok"
	"github.com/weisyn/tiktok-sdk-go/types"
	"github.com/weisyn/tiktok-sdk-go/utils"
	"github.com/weisyn/tiktok-sdk-go/wallet"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if rpcErr, ok := types.IsRPCError(err); ok {
			fmt.Fprintf(os.Stderr, "trace id: %s\n", rpcErr.TraceID)
		}
		os.Exit(1)
	}
}

func newApp() *cli.App {
	waitFlag := &cli.BoolFlag{
		Name:  "wait",
		Usage: "Wait until the request transaction is committed",
	}

	return &cli.App{
		Name:  "tiktok",
		Usage: "Play the tiktok card game through a knside-out node",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML config file",
				Value:   "tiktok.toml",
				EnvVars: []string{"TIKTOK_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Override the node JSON-RPC endpoint",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "purchase-box",
				Usage:  "Buy a new box",
				Flags:  []cli.Flag{waitFlag},
				Action: withService(purchaseBox),
			},
			{
				Name:  "open-box",
				Usage: "Open a box",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "outpoint", Usage: "Box outpoint as <tx_hash>:<index>", Required: true},
					waitFlag,
				},
				Action: withService(openBox),
			},
			{
				Name:  "upload-program",
				Usage: "Upload a Lua behavior program to a card",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "card", Usage: "Card outpoint as <tx_hash>:<index>", Required: true},
					&cli.StringFlag{Name: "file", Usage: "Path to the program source"},
					&cli.StringFlag{Name: "program", Usage: "Inline program source"},
					waitFlag,
				},
				Action: withService(uploadProgram),
			},
			{
				Name:  "start-battle",
				Usage: "Start a battle between two cards",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "card", Usage: "Card outpoint as <tx_hash>:<index> (exactly two)", Required: true},
					waitFlag,
				},
				Action: withService(startBattle),
			},
			{
				Name:   "inventory",
				Usage:  "List all boxes and cards",
				Action: withService(listItems(func(ctx context.Context, s tiktok.Service) ([]*types.PersonalItem, error) { return s.FetchInventory(ctx) })),
			},
			{
				Name:   "boxes",
				Usage:  "List boxes",
				Action: withService(listItems(func(ctx context.Context, s tiktok.Service) ([]*types.PersonalItem, error) { return s.GetBoxes(ctx) })),
			},
			{
				Name:   "cards",
				Usage:  "List cards",
				Action: withService(listItems(func(ctx context.Context, s tiktok.Service) ([]*types.PersonalItem, error) { return s.GetCards(ctx) })),
			},
			{
				Name:      "wait",
				Usage:     "Wait until a request transaction is committed",
				ArgsUsage: "<tx_hash>",
				Action:    withService(waitCommitted),
			},
		},
	}
}

type serviceAction func(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, logger zerolog.Logger) error

// withService 加载配置并构建 tiktok 服务
func withService(action serviceAction) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		settings, err := config.LoadFile(cCtx.String("config"))
		if err != nil {
			return err
		}
		if endpoint := cCtx.String("endpoint"); endpoint != "" {
			settings.Endpoint = endpoint
		}
		if level := cCtx.String("log-level"); level != "" {
			settings.LogLevel = level
		}
		if err := settings.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err := newLogger(settings.EffectiveLogLevel())
		if err != nil {
			return err
		}

		clientCfg := settings.ClientConfig()
		clientCfg.Logger = client.NewZerologLogger(logger)
		rpcClient, err := client.NewClient(clientCfg)
		if err != nil {
			return err
		}
		defer rpcClient.Close()

		w, err := wallet.NewWalletFromPrivateKey(settings.PrivateKey)
		if err != nil {
			return err
		}

		svcCfg := settings.ServiceConfig()
		svcCfg.Logger = client.NewZerologLogger(logger)
		svc, err := tiktok.NewService(rpcClient, w, settings.Address, svcCfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return action(cCtx, ctx, svc, logger)
	}
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}

func purchaseBox(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, logger zerolog.Logger) error {
	txHash, err := svc.PurchaseBox(ctx)
	if err != nil {
		return err
	}
	return finish(cCtx, ctx, svc, txHash)
}

func openBox(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, logger zerolog.Logger) error {
	box, err := parseOutpoint(cCtx.String("outpoint"))
	if err != nil {
		return err
	}
	txHash, err := svc.OpenBox(ctx, box)
	if err != nil {
		return err
	}
	return finish(cCtx, ctx, svc, txHash)
}

func uploadProgram(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, logger zerolog.Logger) error {
	card, err := parseOutpoint(cCtx.String("card"))
	if err != nil {
		return err
	}

	var program string
	switch {
	case cCtx.String("file") != "" && cCtx.String("program") != "":
		return fmt.Errorf("--file and --program are mutually exclusive")
	case cCtx.String("file") != "":
		program, err = utils.ReadProgramFile(cCtx.String("file"))
	case cCtx.String("program") != "":
		program, err = utils.ParseProgram([]byte(cCtx.String("program")))
	default:
		return fmt.Errorf("one of --file or --program is required")
	}
	if err != nil {
		return err
	}

	logger.Debug().Str("card", card.String()).Int("program_bytes", len(program)).Msg("Uploading card program")
	txHash, err := svc.UploadCardProgram(ctx, card, program)
	if err != nil {
		return err
	}
	return finish(cCtx, ctx, svc, txHash)
}

func startBattle(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, logger zerolog.Logger) error {
	cards := cCtx.StringSlice("card")
	if len(cards) != 2 {
		return fmt.Errorf("exactly two --card flags are required, got %d", len(cards))
	}
	card1, err := parseOutpoint(cards[0])
	if err != nil {
		return err
	}
	card2, err := parseOutpoint(cards[1])
	if err != nil {
		return err
	}

	txHash, err := svc.StartBattle(ctx, card1, card2)
	if err != nil {
		return err
	}
	return finish(cCtx, ctx, svc, txHash)
}

func listItems(fetch func(context.Context, tiktok.Service) ([]*types.PersonalItem, error)) serviceAction {
	return func(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, logger zerolog.Logger) error {
		items, err := fetch(ctx, svc)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cCtx.App.Writer)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(items)
	}
}

func waitCommitted(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, logger zerolog.Logger) error {
	if cCtx.NArg() != 1 {
		return fmt.Errorf("usage: wait <tx_hash>")
	}
	return printCommitted(cCtx, ctx, svc, cCtx.Args().First())
}

// finish 输出请求交易哈希，指定 --wait 时继续等待上链
func finish(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, txHash string) error {
	if !cCtx.Bool("wait") {
		fmt.Fprintln(cCtx.App.Writer, txHash)
		return nil
	}
	return printCommitted(cCtx, ctx, svc, txHash)
}

func printCommitted(cCtx *cli.Context, ctx context.Context, svc tiktok.Service, txHash string) error {
	committedHash, committed, err := svc.WaitTransactionCommitted(ctx, txHash)
	if err != nil {
		return err
	}
	if !committed {
		return fmt.Errorf("transaction %s was not committed", txHash)
	}
	fmt.Fprintln(cCtx.App.Writer, committedHash)
	return nil
}

// parseOutpoint 解析 <tx_hash>:<index>，index 支持十进制或 0x 十六进制
func parseOutpoint(s string) (types.Outpoint, error) {
	hash, indexStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || hash == "" || indexStr == "" {
		return types.Outpoint{}, fmt.Errorf("invalid outpoint %q: expected <tx_hash>:<index>", s)
	}

	var index uint64
	var err error
	if utils.HasHexPrefix(indexStr) {
		index, err = utils.DecodeIndex(indexStr)
	} else {
		index, err = strconv.ParseUint(indexStr, 10, 64)
	}
	if err != nil {
		return types.Outpoint{}, fmt.Errorf("invalid outpoint index %q: %w", indexStr, err)
	}
	return types.Outpoint{TxHash: utils.AddHexPrefix(hash), Index: index}, nil
}
