package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/tiktok-sdk-go/types"
)

func TestParseOutpoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Outpoint
		wantErr bool
	}{
		{name: "十进制索引", input: "0xabc:1", want: types.Outpoint{TxHash: "0xabc", Index: 1}},
		{name: "十六进制索引", input: "0xabc:0x1f", want: types.Outpoint{TxHash: "0xabc", Index: 31}},
		{name: "补齐哈希前缀", input: "abc:0", want: types.Outpoint{TxHash: "0xabc", Index: 0}},
		{name: "缺少索引", input: "0xabc", wantErr: true},
		{name: "空索引", input: "0xabc:", wantErr: true},
		{name: "空哈希", input: ":1", wantErr: true},
		{name: "非法索引", input: "0xabc:one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOutpoint(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("DEBUG")
	assert.NoError(t, err)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestNewAppCommands(t *testing.T) {
	app := newApp()
	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{
		"purchase-box", "open-box", "upload-program", "start-battle",
		"inventory", "boxes", "cards", "wait",
	}, names)
}
