package utils

import (
	"strings"
	"testing"
)

func TestAddressNetwork(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
		wantErr bool
	}{
		{
			name:    "testnet short address",
			address: "ckt1qyq93wzur9h9l6qwyk6d4dvkuufp6gvl08aszz5syl",
			want:    AddressPrefixTestnet,
		},
		{
			name:    "upper case is accepted",
			address: strings.ToUpper("ckt1qyq93wzur9h9l6qwyk6d4dvkuufp6gvl08aszz5syl"),
			want:    AddressPrefixTestnet,
		},
		{
			name:    "bad checksum",
			address: "ckt1qyq93wzur9h9l6qwyk6d4dvkuufp6gvl08aszz5syq",
			wantErr: true,
		},
		{
			name:    "mixed case",
			address: "ckt1qyq93wzur9h9l6qwyk6d4dvkuufp6gvl08aszz5sYl",
			wantErr: true,
		},
		{
			name:    "unknown prefix",
			address: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			wantErr: true,
		},
		{
			name:    "empty",
			address: "",
			wantErr: true,
		},
		{
			name:    "full format address only checks charset",
			address: "ckb1" + strings.Repeat("q", 95),
			want:    AddressPrefixMainnet,
		},
		{
			name:    "full format address with invalid character",
			address: "ckb1" + strings.Repeat("q", 94) + "b",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddressNetwork(tt.address)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddressNetwork() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("AddressNetwork() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	if err := ValidateAddress("ckt1qyq93wzur9h9l6qwyk6d4dvkuufp6gvl08aszz5syl"); err != nil {
		t.Errorf("ValidateAddress() unexpected error: %v", err)
	}
	if err := ValidateAddress("not-an-address"); err == nil {
		t.Error("ValidateAddress() expected error")
	}
}
