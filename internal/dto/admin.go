package dto

import (
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
)

type AddTabRequest struct {
	Name              string `json:"name"                validate:"required"`
	Limit             int    `json:"limit"`
	LowStockThreshold *int   `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

type AddTabResponse struct {
	Message string     `json:"message"`
	Created bool       `json:"created"`
	Tab     md.TabType `json:"tab"`
}

type ProvisionRequest struct {
	SerialNumber string    `json:"serial_number" validate:"required"`
	TabID        uuid.UUID `json:"tab_id"        validate:"required"`
}

type ProvisionResponse struct {
	Message  string    `json:"message"`
	Device   md.Device `json:"device"`
	NewStock int       `json:"new_stock"`
}

type RepairRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	Repair   bool   `json:"repair"`
}

type DeviceResponse struct {
	Message string    `json:"message"`
	Device  md.Device `json:"device"`
}

type ForceReturnResponse struct {
	Message        string `json:"message"`
	RemainingStock int    `json:"remaining_stock"`
}

type ArchiveResponse struct {
	URL string `json:"url"`
}
