package rpc

import (
	"encoding/json"
	"net/http"
)

type imageASCIIParams struct {
	uploadParams
	Width int `json:"width"`
}

type qrParams struct {
	Data string `json:"data"`
	Size int    `json:"size"`
}

type pdfParams struct {
	ContentBase64 string `json:"content_base64"`
}

type httpGetParams struct {
	URL string `json:"url"`
}

type fakerParams struct {
	Rows   int      `json:"rows"`
	Fields []string `json:"fields"`
}

type artifactParams struct {
	Name string `json:"name"`
}

func plainUpload(p *uploadParams) *uploadParams { return p }

func (s *Server) dispatchFilesImagePDFRPC(method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "files.convert":
		result, rpcErr := callWithUploadParams(rawParams, plainUpload, func(p uploadParams, content []byte) (any, error) {
			return s.service.ConvertFile(p.Name, content)
		})
		return result, rpcErr, true
	case "image.qr":
		result, rpcErr := callWithParams(rawParams, func(p qrParams) (any, error) {
			return s.service.QRCode(p.Data, p.Size)
		})
		return result, rpcErr, true
	case "image.preview":
		result, rpcErr := callWithUploadParams(rawParams, plainUpload, func(p uploadParams, content []byte) (any, error) {
			return s.service.PreviewImage(p.Name, content)
		})
		return result, rpcErr, true
	case "image.ascii":
		upload := func(p *imageASCIIParams) *uploadParams { return &p.uploadParams }
		result, rpcErr := callWithUploadParams(rawParams, upload, func(p imageASCIIParams, content []byte) (any, error) {
			return s.service.ImageToASCII(p.Name, content, p.Width)
		})
		return result, rpcErr, true
	case "pdf.extract":
		upload := func(p *pdfParams) *uploadParams { return &uploadParams{ContentBase64: p.ContentBase64} }
		result, rpcErr := callWithUploadParams(rawParams, upload, func(_ pdfParams, content []byte) (any, error) {
			return s.service.ExtractPDFText(content)
		})
		return result, rpcErr, true
	default:
		return nil, nil, false
	}
}

// dispatchHTTPRPC ties the outbound GET to the inbound request context.
func (s *Server) dispatchHTTPRPC(r *http.Request, method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	if method != "http.get" {
		return nil, nil, false
	}
	result, rpcErr := callWithParams(rawParams, func(p httpGetParams) (any, error) {
		return s.service.HTTPGet(r.Context(), p.URL)
	})
	return result, rpcErr, true
}

func (s *Server) dispatchFakerDeployRPC(method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "faker.generate":
		result, rpcErr := callWithParams(rawParams, func(p fakerParams) (any, error) {
			return s.service.GenerateFakeData(p.Rows, p.Fields)
		})
		return result, rpcErr, true
	case "deploy.artifacts":
		result, rpcErr := callWithoutParams(rawParams, func() (any, error) {
			return s.service.DeployArtifacts(), nil
		})
		return result, rpcErr, true
	case "deploy.artifact":
		result, rpcErr := callWithParams(rawParams, func(p artifactParams) (any, error) {
			return s.service.DeployArtifact(p.Name)
		})
		return result, rpcErr, true
	default:
		return nil, nil, false
	}
}
