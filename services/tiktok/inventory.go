package tiktok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/weisyn/tiktok-sdk-go/types"
	"github.com/weisyn/tiktok-sdk-go/utils"
)

// fetchPersonalDataParams ko_fetchPersonalData 参数
type fetchPersonalDataParams struct {
	Address         string `json:"address"`
	ProjectTypeArgs string `json:"project_type_args"`
}

// rawPersonalItem 节点返回的背包条目，data 为 JSON 文本或其十六进制编码
type rawPersonalItem struct {
	Data     json.RawMessage `json:"data"`
	Outpoint types.Outpoint  `json:"outpoint"`
}

// FetchInventory 查询背包中的全部卡包与卡牌，保持节点返回顺序
func (s *tiktokService) FetchInventory(ctx context.Context) ([]*types.PersonalItem, error) {
	params := &fetchPersonalDataParams{
		Address:         s.address,
		ProjectTypeArgs: s.config.ProjectTypeArgs,
	}

	raw, err := s.client.Call(ctx, MethodFetchPersonalData, []interface{}{params})
	if err != nil {
		return nil, fmt.Errorf("fetch personal data failed: %w", err)
	}

	items, err := decodeInventory(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Personal data fetched", "address", s.address, "items", len(items))
	return items, nil
}

// GetBoxes 查询背包中的卡包
func (s *tiktokService) GetBoxes(ctx context.Context) ([]*types.PersonalItem, error) {
	return s.fetchByKind(ctx, types.ItemKindBox)
}

// GetCards 查询背包中的卡牌
func (s *tiktokService) GetCards(ctx context.Context) ([]*types.PersonalItem, error) {
	return s.fetchByKind(ctx, types.ItemKindCard)
}

func (s *tiktokService) fetchByKind(ctx context.Context, kind types.ItemKind) ([]*types.PersonalItem, error) {
	items, err := s.FetchInventory(ctx)
	if err != nil {
		return nil, err
	}
	return FilterItems(items, kind), nil
}

// FilterItems 按类型过滤背包条目，保持原有顺序
func FilterItems(items []*types.PersonalItem, kind types.ItemKind) []*types.PersonalItem {
	filtered := make([]*types.PersonalItem, 0, len(items))
	for _, item := range items {
		if item != nil && item.Kind == kind {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// decodeInventory 解析 ko_fetchPersonalData 的 result
//
// **兼容格式**：
// - 条目数组：[{data, outpoint}, ...]
// - 对象：{"data": [{data, outpoint}, ...]}
// - 以上两者的 JSON 字符串编码
func decodeInventory(raw json.RawMessage) ([]*types.PersonalItem, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, types.NewDecodeError("personal data", err)
		}
		raw = bytes.TrimSpace([]byte(text))
	}
	if len(raw) == 0 {
		return nil, types.NewDecodeError("personal data", fmt.Errorf("empty result"))
	}

	var rawItems []rawPersonalItem
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &rawItems); err != nil {
			return nil, types.NewDecodeError("personal data", err)
		}
	case '{':
		var wrapped struct {
			Data []rawPersonalItem `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, types.NewDecodeError("personal data", err)
		}
		rawItems = wrapped.Data
	default:
		return nil, types.NewDecodeError("personal data", fmt.Errorf("unexpected result %s", string(raw)))
	}

	items := make([]*types.PersonalItem, 0, len(rawItems))
	for i, rawItem := range rawItems {
		payload, err := itemPayload(rawItem.Data)
		if err != nil {
			return nil, types.NewDecodeError(fmt.Sprintf("personal item %d", i), err)
		}
		item, err := types.DecodePersonalItem(payload, rawItem.Outpoint)
		if err != nil {
			return nil, fmt.Errorf("personal item %d (%s): %w", i, rawItem.Outpoint, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// itemPayload 取出条目的 JSON 负载：内嵌 JSON 字符串、0x 十六进制编码的 JSON，或直接的对象
func itemPayload(data json.RawMessage) ([]byte, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil, fmt.Errorf("missing data")
	}
	if data[0] == '{' {
		return data, nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil, fmt.Errorf("data must be a string or object: %w", err)
	}
	if utils.HasHexPrefix(text) {
		decoded, err := utils.DecodeHex(text)
		if err != nil {
			return nil, err
		}
		return decoded, nil
	}
	return []byte(text), nil
}
