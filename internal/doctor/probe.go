package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultRPCProbeTimeout = 2 * time.Second

// probeAPIVersion asks a running daemon for its current rpc api version.
func probeAPIVersion(ctx context.Context, rpcAddr string) (version int, retErr error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, defaultRPCProbeTimeout)
	defer cancel()

	body := `{"jsonrpc":"2.0","id":1,"method":"rpc.version"}`
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://"+strings.TrimSpace(rpcAddr)+"/rpc", strings.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && retErr == nil {
			retErr = closeErr
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rpc status %d", resp.StatusCode)
	}
	var decoded struct {
		Result struct {
			CurrentVersion int `json:"current_version"`
		} `json:"result"`
		Error any `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, err
	}
	if decoded.Error != nil {
		return 0, errors.New("rpc returned error")
	}
	return decoded.Result.CurrentVersion, nil
}
