package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutpoint_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Outpoint{TxHash: "0xaa", Index: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tx_hash":"0xaa","index":"0x1"}`, string(b))
}

func TestOutpoint_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Outpoint
		wantErr bool
	}{
		{name: "hex index", input: `{"tx_hash":"0xaa","index":"0x1"}`, want: Outpoint{TxHash: "0xaa", Index: 1}},
		{name: "numeric index", input: `{"tx_hash":"0xaa","index":2}`, want: Outpoint{TxHash: "0xaa", Index: 2}},
		{name: "missing index", input: `{"tx_hash":"0xaa"}`, wantErr: true},
		{name: "missing tx hash", input: `{"index":"0x1"}`, wantErr: true},
		{name: "bad index", input: `{"tx_hash":"0xaa","index":"one"}`, wantErr: true},
		{name: "negative index", input: `{"tx_hash":"0xaa","index":-1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Outpoint
			err := json.Unmarshal([]byte(tt.input), &o)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, o)
		})
	}
}

func TestDecodePersonalItem(t *testing.T) {
	outpoint := Outpoint{TxHash: "0xa059", Index: 1}

	box, err := DecodePersonalItem([]byte(`{"box_id":6,"max_cards":1}`), outpoint)
	require.NoError(t, err)
	assert.Equal(t, ItemKindBox, box.Kind)
	assert.Equal(t, &Box{BoxID: 6, MaxCards: 1}, box.Box)
	assert.Nil(t, box.Card)
	assert.Equal(t, outpoint, box.Outpoint)

	card, err := DecodePersonalItem([]byte(`{"id":2,"level":5,"rarity":"普通的","weapon":"枪","skill":"刺杀","race":"天使","tribe":"地煞"}`), outpoint)
	require.NoError(t, err)
	assert.Equal(t, ItemKindCard, card.Kind)
	assert.Nil(t, card.Box)
	assert.Equal(t, uint64(2), card.Card.ID)
	assert.Equal(t, uint64(5), card.Card.Level)
	assert.Equal(t, "枪", card.Card.Weapon)

	for _, payload := range []string{`{"max_cards":1}`, `{"box_id":1,"id":1}`, `[]`, `{"box_id":"six"}`} {
		_, err := DecodePersonalItem([]byte(payload), outpoint)
		require.Error(t, err, payload)
		_, ok := IsDecodeError(err)
		assert.True(t, ok, payload)
	}
}

func TestPersonalItem_MarshalJSON(t *testing.T) {
	item := &PersonalItem{
		Kind:     ItemKindBox,
		Box:      &Box{BoxID: 6, MaxCards: 1},
		Outpoint: Outpoint{TxHash: "0xa059", Index: 1},
	}
	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"box","data":{"box_id":6,"max_cards":1},"outpoint":{"tx_hash":"0xa059","index":"0x1"}}`, string(b))
}

func TestItemKind_String(t *testing.T) {
	assert.Equal(t, "box", ItemKindBox.String())
	assert.Equal(t, "card", ItemKindCard.String())
	assert.Equal(t, "unknown", ItemKind(0).String())
}

func TestContractCall_Encode(t *testing.T) {
	tests := []struct {
		name    string
		call    ContractCall
		want    string
		wantErr bool
	}{
		{name: "no args", call: NewContractCall("open_box"), want: "open_box()"},
		{
			name: "program string",
			call: NewContractCall("set_card_program", "return function(r) print('round: ' .. r) end"),
			want: `set_card_program("return function(r) print('round: ' .. r) end")`,
		},
		{
			name: "quotes and html characters are not mangled",
			call: NewContractCall("set_card_program", `if a < b and c > d then print("x & y") end`),
			want: `set_card_program("if a < b and c > d then print(\"x & y\") end")`,
		},
		{
			name: "control characters use lua decimal escapes",
			call: NewContractCall("set_card_program", "x = '\x01'\n\ty = '\x7f'"),
			want: `set_card_program("x = '\001'\n\ty = '\127'")`,
		},
		{
			name: "line and paragraph separators use lua unicode escapes",
			call: NewContractCall("set_card_program", "print('a\u2028b\u2029c')"),
			want: `set_card_program("print('a\u{2028}b\u{2029}c')")`,
		},
		{
			name: "backslashes and non-ascii text",
			call: NewContractCall("set_card_program", `print("C:\\tmp", "卡牌")`),
			want: `set_card_program("print(\"C:\\tmp\", \"卡牌\")")`,
		},
		{
			name: "invalid utf-8 bytes are escaped",
			call: NewContractCall("f", "a\xffb"),
			want: `f("a\255b")`,
		},
		{name: "multiple args", call: NewContractCall("f", "a", 1, true), want: `f("a",1,true)`},
		{name: "empty name", call: ContractCall{}, wantErr: true},
		{name: "unsupported arg", call: NewContractCall("f", make(chan int)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call.Encode()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tt.call.String())
		})
	}
}
