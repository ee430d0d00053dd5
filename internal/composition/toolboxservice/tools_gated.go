package toolboxservice

import (
	"context"

	"toolbox/go-backend/internal/domains/capability"
	"toolbox/go-backend/internal/domains/imaging"
	"toolbox/go-backend/internal/domains/pdftext"
	"toolbox/go-backend/internal/domains/tabular"
	"toolbox/go-backend/pkg/models"
)

// ConvertFile needs the tables capability only for spreadsheet formats;
// JSON, YAML and HCL documents convert regardless.
func (s *Service) ConvertFile(name string, content []byte) (result models.FileConversion, err error) {
	defer s.track("files.convert", s.now(), &err)
	if kind, ok := tabular.KindOf(name); ok && tabular.NeedsTables(kind) {
		if err = s.caps.Require(capability.Tables); err != nil {
			return models.FileConversion{}, err
		}
	}
	return s.tables.Convert(tabular.Upload{Name: name, Content: content})
}

func (s *Service) QRCode(data string, size int) (result models.QRCode, err error) {
	defer s.track("image.qr", s.now(), &err)
	if err = s.caps.Require(capability.QRCode); err != nil {
		return models.QRCode{}, err
	}
	return imaging.QR(data, size)
}

func (s *Service) PreviewImage(name string, content []byte) (result models.ImageInfo, err error) {
	defer s.track("image.preview", s.now(), &err)
	if err = s.caps.Require(capability.Imaging); err != nil {
		return models.ImageInfo{}, err
	}
	return s.images.Preview(name, content)
}

func (s *Service) ImageToASCII(name string, content []byte, width int) (result models.ASCIIArt, err error) {
	defer s.track("image.ascii", s.now(), &err)
	if err = s.caps.Require(capability.Imaging); err != nil {
		return models.ASCIIArt{}, err
	}
	return s.images.ASCII(name, content, width)
}

func (s *Service) ExtractPDFText(content []byte) (result models.PDFText, err error) {
	defer s.track("pdf.extract", s.now(), &err)
	if err = s.caps.Require(capability.PDF); err != nil {
		return models.PDFText{}, err
	}
	return pdftext.Extract(content)
}

func (s *Service) HTTPGet(ctx context.Context, target string) (result models.HTTPResponse, err error) {
	defer s.track("http.get", s.now(), &err)
	if err = s.caps.Require(capability.HTTP); err != nil {
		return models.HTTPResponse{}, err
	}
	return s.fetcher.Get(ctx, target)
}

func (s *Service) GenerateFakeData(rows int, fields []string) (result models.FakeRows, err error) {
	defer s.track("faker.generate", s.now(), &err)
	if err = s.caps.Require(capability.Faker); err != nil {
		return models.FakeRows{}, err
	}
	return s.faker.Generate(rows, fields)
}
