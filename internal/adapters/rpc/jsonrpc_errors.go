package rpc

import (
	"toolbox/go-backend/internal/domains/contracts"
)

const (
	rpcCodeParseError         = -32700
	rpcCodeInvalidRequest     = -32600
	rpcCodeMethodNotFound     = -32601
	rpcCodeInvalidParams      = -32602
	rpcCodeInvalidInput       = -32010
	rpcCodeUnavailable        = -32011
	rpcCodeToolFailure        = -32012
	rpcCodeVersionUnsupported = -32080
	rpcCodeVersionDeprecated  = -32081
	rpcCodeServiceUnavailable = -32099
)

func rpcInvalidParams() *rpcError {
	return &rpcError{Code: rpcCodeInvalidParams, Message: "invalid params"}
}

// rpcToolError maps the error taxonomy onto rpc codes. The message is the
// error text so the UI can show it verbatim.
func rpcToolError(err error) *rpcError {
	category := contracts.ErrorCategory(err)
	code := rpcCodeToolFailure
	switch category {
	case contracts.ErrorCategoryInput:
		code = rpcCodeInvalidInput
	case contracts.ErrorCategoryCapability:
		code = rpcCodeUnavailable
	}
	return &rpcError{
		Code:    code,
		Message: err.Error(),
		Data:    map[string]any{"category": category},
	}
}
