package rpc

import (
	"encoding/json"
)

func callWithoutParams(rawParams json.RawMessage, call func() (any, error)) (any, *rpcError) {
	if err := decodeParams(rawParams, &struct{}{}); err != nil {
		return nil, rpcInvalidParams()
	}
	result, err := call()
	if err != nil {
		return nil, rpcToolError(err)
	}
	return result, nil
}

func callWithParams[P any](rawParams json.RawMessage, call func(P) (any, error)) (any, *rpcError) {
	var params P
	if err := decodeParams(rawParams, &params); err != nil {
		return nil, rpcInvalidParams()
	}
	result, err := call(params)
	if err != nil {
		return nil, rpcToolError(err)
	}
	return result, nil
}

type uploadParams struct {
	Name          string `json:"name"`
	ContentBase64 string `json:"content_base64"`
}

// callWithUploadParams decodes the upload envelope plus any extra fields in P.
func callWithUploadParams[P any](
	rawParams json.RawMessage,
	upload func(*P) *uploadParams,
	call func(p P, content []byte) (any, error),
) (any, *rpcError) {
	var params P
	if err := decodeParams(rawParams, &params); err != nil {
		return nil, rpcInvalidParams()
	}
	content, err := decodeContent(upload(&params).ContentBase64)
	if err != nil {
		return nil, rpcInvalidParams()
	}
	result, err := call(params, content)
	if err != nil {
		return nil, rpcToolError(err)
	}
	return result, nil
}
