package admin

import (
	"io"
)

type AdminServiceAPI interface {
	GetDashboardStats() (*DashboardStats, error)
	ExportDirectory() (contentType, filename string, out []byte, err error)
	ImportLocalities(r io.Reader) (*ImportSummary, error)
}
