package contracts

import contractports "toolbox/go-backend/internal/domains/contracts/ports"

type OverviewAPI = contractports.OverviewAPI
type CalcAPI = contractports.CalcAPI
type UnitsAPI = contractports.UnitsAPI
type RandomAPI = contractports.RandomAPI
type CodecAPI = contractports.CodecAPI
type TextAPI = contractports.TextAPI
type FilesAPI = contractports.FilesAPI
type ImageAPI = contractports.ImageAPI
type PDFAPI = contractports.PDFAPI
type HTTPAPI = contractports.HTTPAPI
type DatesAPI = contractports.DatesAPI
type ColorsAPI = contractports.ColorsAPI
type FakerAPI = contractports.FakerAPI
type DeployAPI = contractports.DeployAPI
type ToolboxService = contractports.ToolboxService
