package business

type BusinessServicePort interface {
	CreateBusiness(input BusinessInput) (*Business, error)
	GetBusiness(id uint) (*Business, error)
	UpdateBusiness(id uint, input BusinessInput) (*Business, error)
	DeleteBusiness(id uint) (*Business, error)
	ClaimBusiness(id uint) (*Business, error)
	ListByCouncil(councilID int) ([]Business, error)
	UploadPhoto(id uint, base64Data string) (*Business, error)
}
