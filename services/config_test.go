package services

import (
	"testing"
)

const testTypeArgs = "0xfc03b799cd921255f48aaf28f36d613d8addfd8b3dadbc945d94f21a3d00a67b"

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name         string
		config       *Config
		wantErr      bool
		wantTypeArgs string
		wantEncoding SignatureEncoding
	}{
		{
			name:         "defaults encoding",
			config:       &Config{ProjectTypeArgs: testTypeArgs},
			wantTypeArgs: testTypeArgs,
			wantEncoding: SignatureEncodingHex,
		},
		{
			name:         "adds hex prefix",
			config:       &Config{ProjectTypeArgs: testTypeArgs[2:], SignatureEncoding: SignatureEncodingHexNoPrefix},
			wantTypeArgs: testTypeArgs,
			wantEncoding: SignatureEncodingHexNoPrefix,
		},
		{name: "nil", config: nil, wantErr: true},
		{name: "missing type args", config: &Config{}, wantErr: true},
		{name: "short type args", config: &Config{ProjectTypeArgs: "0x1234"}, wantErr: true},
		{name: "not hex", config: &Config{ProjectTypeArgs: "0xzz"}, wantErr: true},
		{name: "unknown encoding", config: &Config{ProjectTypeArgs: testTypeArgs, SignatureEncoding: "base64"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.config.ProjectTypeArgs != tt.wantTypeArgs {
				t.Errorf("ProjectTypeArgs = %s, want %s", tt.config.ProjectTypeArgs, tt.wantTypeArgs)
			}
			if tt.config.SignatureEncoding != tt.wantEncoding {
				t.Errorf("SignatureEncoding = %s, want %s", tt.config.SignatureEncoding, tt.wantEncoding)
			}
		})
	}
}
