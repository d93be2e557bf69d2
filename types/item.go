package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/weisyn/tiktok-sdk-go/utils"
)

// Outpoint 指向某笔交易的某个输出，用于标识玩家持有的卡包或卡牌
//
// **编码**：
// - 本地：tx_hash + 整数 index
// - 链路：tx_hash + 十六进制字符串 index（1 <-> "0x1"）
type Outpoint struct {
	TxHash string
	Index  uint64
}

type wireOutpoint struct {
	TxHash string          `json:"tx_hash"`
	Index  json.RawMessage `json:"index"`
}

// MarshalJSON 以节点格式编码（index 为十六进制字符串）
func (o Outpoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TxHash string `json:"tx_hash"`
		Index  string `json:"index"`
	}{
		TxHash: o.TxHash,
		Index:  utils.EncodeIndex(o.Index),
	})
}

// UnmarshalJSON 解码节点格式，index 同时兼容十六进制字符串与数字
func (o *Outpoint) UnmarshalJSON(data []byte) error {
	var w wireOutpoint
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.TxHash == "" {
		return fmt.Errorf("outpoint: missing tx_hash")
	}

	index, err := decodeWireIndex(w.Index)
	if err != nil {
		return fmt.Errorf("outpoint %s: %w", w.TxHash, err)
	}

	o.TxHash = w.TxHash
	o.Index = index
	return nil
}

func decodeWireIndex(raw json.RawMessage) (uint64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, fmt.Errorf("missing index")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return utils.DecodeIndex(s)
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("invalid index %s", string(raw))
	}
	return n, nil
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxHash, o.Index)
}

// Box 卡包
type Box struct {
	BoxID    uint64 `json:"box_id"`
	MaxCards uint64 `json:"max_cards"`
}

// Card 卡牌，Program 为节点在对战中执行的 Lua 行为脚本（可选）
type Card struct {
	ID      uint64 `json:"id"`
	Level   uint64 `json:"level"`
	Rarity  string `json:"rarity"`
	Weapon  string `json:"weapon"`
	Skill   string `json:"skill"`
	Race    string `json:"race"`
	Tribe   string `json:"tribe"`
	Program string `json:"program,omitempty"`
}

// ItemKind 背包物品类型
type ItemKind int

const (
	ItemKindBox ItemKind = iota + 1
	ItemKindCard
)

func (k ItemKind) String() string {
	switch k {
	case ItemKindBox:
		return "box"
	case ItemKindCard:
		return "card"
	default:
		return "unknown"
	}
}

// PersonalItem 背包物品：卡包或卡牌（二者恰有其一）及其所在的 Outpoint
type PersonalItem struct {
	Kind     ItemKind
	Box      *Box
	Card     *Card
	Outpoint Outpoint
}

// MarshalJSON 输出 {kind, data, outpoint}，供 CLI 展示
func (p *PersonalItem) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch p.Kind {
	case ItemKindBox:
		data = p.Box
	case ItemKindCard:
		data = p.Card
	}
	return json.Marshal(struct {
		Kind     string      `json:"kind"`
		Data     interface{} `json:"data"`
		Outpoint Outpoint    `json:"outpoint"`
	}{
		Kind:     p.Kind.String(),
		Data:     data,
		Outpoint: p.Outpoint,
	})
}

// DecodePersonalItem 解析背包物品的 JSON 负载
//
// 负载中含 box_id 的为卡包，含 id 的为卡牌；两者都有或都没有时返回 DecodeError
func DecodePersonalItem(payload []byte, outpoint Outpoint) (*PersonalItem, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, NewDecodeError("personal item payload", err)
	}

	_, hasBoxID := fields["box_id"]
	_, hasID := fields["id"]

	item := &PersonalItem{Outpoint: outpoint}
	switch {
	case hasBoxID && hasID:
		return nil, NewDecodeError("personal item payload",
			fmt.Errorf("ambiguous payload %s: both box_id and id present", compact(payload)))
	case hasBoxID:
		var box Box
		if err := json.Unmarshal(payload, &box); err != nil {
			return nil, NewDecodeError("box", err)
		}
		item.Kind = ItemKindBox
		item.Box = &box
	case hasID:
		var card Card
		if err := json.Unmarshal(payload, &card); err != nil {
			return nil, NewDecodeError("card", err)
		}
		item.Kind = ItemKindCard
		item.Card = &card
	default:
		return nil, NewDecodeError("personal item payload",
			fmt.Errorf("payload %s is neither a box nor a card", compact(payload)))
	}
	return item, nil
}

func compact(payload []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err != nil {
		return string(payload)
	}
	return buf.String()
}

// ContractCall 合约调用描述：函数名 + 参数列表
//
// 字符串参数渲染为 Lua 字符串字面量后拼接，调用方无需自行转义脚本内容
type ContractCall struct {
	Name string
	Args []interface{}
}

// NewContractCall 创建合约调用
func NewContractCall(name string, args ...interface{}) ContractCall {
	return ContractCall{Name: name, Args: args}
}

// Encode 渲染为节点接受的调用字符串，例如 set_card_program("return ...")
func (c ContractCall) Encode() (string, error) {
	if c.Name == "" {
		return "", fmt.Errorf("contract call name is required")
	}
	parts := make([]string, 0, len(c.Args))
	for i, arg := range c.Args {
		encoded, err := marshalArg(arg)
		if err != nil {
			return "", fmt.Errorf("encode argument %d of %s: %w", i, c.Name, err)
		}
		parts = append(parts, encoded)
	}
	return c.Name + "(" + strings.Join(parts, ",") + ")", nil
}

// marshalArg 字符串参数渲染为 Lua 字符串字面量，其余参数按 JSON 编码
func marshalArg(arg interface{}) (string, error) {
	if text, ok := arg.(string); ok {
		return quoteLua(text), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(arg); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// quoteLua 节点以 Lua 源码加载调用字符串：控制字符写成三位 \ddd，U+2028/U+2029 写成 \u{XXXX}
func quoteLua(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\%03d`, s[i])
			i++
			continue
		}
		i += size
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u{%X}`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\%03d`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// String 同 Encode，编码失败时返回函数名
func (c ContractCall) String() string {
	s, err := c.Encode()
	if err != nil {
		return c.Name + "(?)"
	}
	return s
}
