package services

import (
	"fmt"

	"tripplanner/pkg/utils"
)

type PlanDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}

type ExportServiceInterface interface {
	Export(city, itinerary string) (*PlanDocument, error)
}

type ExportService struct {
	renderer utils.PDFRenderer
}

func NewExportService(renderer utils.PDFRenderer) ExportServiceInterface {
	return &ExportService{renderer: renderer}
}

func (e *ExportService) Export(city, itinerary string) (*PlanDocument, error) {
	content, err := e.renderer.Render(itinerary)
	if err != nil {
		return nil, fmt.Errorf("export %s plan: %w", city, err)
	}
	return &PlanDocument{
		FileName:    utils.PlanFileName(city),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
