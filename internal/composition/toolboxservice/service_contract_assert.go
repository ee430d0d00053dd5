package toolboxservice

import "toolbox/go-backend/internal/domains/contracts"

var _ contracts.CalcAPI = (*Service)(nil)
var _ contracts.FilesAPI = (*Service)(nil)
var _ contracts.HTTPAPI = (*Service)(nil)
var _ contracts.ToolboxService = (*Service)(nil)
