package tiktok

import (
	"context"
	"fmt"

	"github.com/weisyn/tiktok-sdk-go/client"
	"github.com/weisyn/tiktok-sdk-go/services"
	"github.com/weisyn/tiktok-sdk-go/types"
	"github.com/weisyn/tiktok-sdk-go/utils"
	"github.com/weisyn/tiktok-sdk-go/wallet"
)

// 节点 JSON-RPC 方法
const (
	MethodMakeRequestTransactionDigest    = "ko_makeRequestTransactionDigest"
	MethodSendTransactionSignature        = "ko_sendTransactionSignature"
	MethodFetchPersonalData               = "ko_fetchPersonalData"
	MethodWaitRequestTransactionCommitted = "ko_waitRequestTransactionCommitted"
)

// 合约函数名
const (
	CallPurchaseBox       = "purchase_box"
	CallOpenBox           = "open_box"
	CallSetCardProgram    = "set_card_program"
	CallStartTiktokBattle = "start_tiktok_battle"
)

// Service tiktok 卡牌游戏业务服务接口
//
// 所有写操作的流程一致：
// 1. 构建合约调用，向节点请求交易摘要
// 2. 使用 Wallet 对摘要做可恢复签名
// 3. 提交签名，得到请求交易哈希
// 上链确认需要另行调用 WaitTransactionCommitted
type Service interface {
	// PurchaseBox 购买卡包
	PurchaseBox(ctx context.Context) (string, error)

	// OpenBox 打开卡包
	OpenBox(ctx context.Context, box types.Outpoint) (string, error)

	// UploadCardProgram 为卡牌上传 Lua 行为脚本
	UploadCardProgram(ctx context.Context, card types.Outpoint, program string) (string, error)

	// StartBattle 使用两张卡牌发起对战
	StartBattle(ctx context.Context, card1, card2 types.Outpoint) (string, error)

	// FetchInventory 查询背包中的全部卡包与卡牌
	FetchInventory(ctx context.Context) ([]*types.PersonalItem, error)

	// GetBoxes 查询背包中的卡包
	GetBoxes(ctx context.Context) ([]*types.PersonalItem, error)

	// GetCards 查询背包中的卡牌
	GetCards(ctx context.Context) ([]*types.PersonalItem, error)

	// WaitTransactionCommitted 等待请求交易上链（节点侧阻塞）
	// committed 为 false 表示节点未给出上链结果
	WaitTransactionCommitted(ctx context.Context, txHash string) (committedHash string, committed bool, err error)

	// RequestDigest 向节点请求交易摘要
	// inputs 为 nil 时以配置地址作为 sender，否则 sender 为空（由输入隐含所有权）
	RequestDigest(ctx context.Context, call types.ContractCall, inputs []types.Outpoint) (string, error)

	// SignAndSubmit 签名摘要并提交，返回请求交易哈希
	SignAndSubmit(ctx context.Context, digest string) (string, error)

	// Address 玩家地址
	Address() string
}

// tiktokService tiktok 服务实现
type tiktokService struct {
	client  client.Client
	wallet  wallet.Wallet
	address string
	config  *services.Config
	logger  client.Logger
}

// NewService 创建 tiktok 服务
//
// address 为玩家的 CKB 地址，需与 wallet 私钥对应（节点侧校验）
func NewService(cli client.Client, w wallet.Wallet, address string, config *services.Config) (Service, error) {
	if cli == nil {
		return nil, fmt.Errorf("client is required")
	}
	if w == nil {
		return nil, fmt.Errorf("wallet is required")
	}
	if err := utils.ValidateAddress(address); err != nil {
		return nil, fmt.Errorf("invalid player address: %w", err)
	}
	if config == nil {
		return nil, fmt.Errorf("service config is required")
	}
	cfg := *config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &tiktokService{
		client:  cli,
		wallet:  w,
		address: address,
		config:  &cfg,
		logger:  cfg.Logger,
	}, nil
}

// Address 玩家地址
func (s *tiktokService) Address() string {
	return s.address
}
