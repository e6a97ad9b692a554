package domain

type (
	Product struct {
		ID           int64
		Name         string
		Price        int64
		Images       []string
		Category     string
		Material     string
		Color        string
		Style        string
		Description  string
		Manufacturer string
		Dimensions   *Dimensions
	}

	Dimensions struct {
		Length int
		Width  int
		Height int
	}
)

// MainImage returns the first image reference or empty string.
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
