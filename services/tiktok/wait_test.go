package tiktok

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitTransactionCommitted(t *testing.T) {
	tests := []struct {
		name          string
		result        string
		wantHash      string
		wantCommitted bool
		wantErr       bool
	}{
		{
			name:          "json encoded hash",
			result:        quote(`"0x8056cafe85283e1451c67893343b667e957d61466ecc42acaf107368898ba556"`),
			wantHash:      "0x8056cafe85283e1451c67893343b667e957d61466ecc42acaf107368898ba556",
			wantCommitted: true,
		},
		{
			name:          "plain hash",
			result:        quote("0x991de9ee86ef96d106e66bd78cdae7651700e6caffcba9bf78e46cec9a08b99d"),
			wantHash:      "0x991de9ee86ef96d106e66bd78cdae7651700e6caffcba9bf78e46cec9a08b99d",
			wantCommitted: true,
		},
		{
			name:          "json encoded null",
			result:        quote("null"),
			wantCommitted: false,
		},
		{
			name:    "non-string result",
			result:  `{"hash":"0xaa"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := mockNode(t, func(call rpcCall) string { return tt.result })
			svc := newTestService(t, &stubWallet{})

			hash, committed, err := svc.WaitTransactionCommitted(context.Background(), "d409d3466cf2a727468aa93314f2377597f1693c3cf4dbcd600455ac2e459fbd")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCommitted, committed)
			assert.Equal(t, tt.wantHash, hash)

			require.Len(t, *calls, 1)
			params := (*calls)[0].Params[0]
			assert.Equal(t, MethodWaitRequestTransactionCommitted, (*calls)[0].Method)
			assert.Equal(t, "0xd409d3466cf2a727468aa93314f2377597f1693c3cf4dbcd600455ac2e459fbd", params["request_hash"])
			assert.Equal(t, testTypeArgs, params["project_type_args"])
		})
	}
}
