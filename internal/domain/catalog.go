package domain

// ProductSpecs are the hardware details shown on the product sheet.
type ProductSpecs struct {
	OS          string `json:"os"`
	RAM         string `json:"ram"`
	Storage     string `json:"storage"`
	Battery     string `json:"battery"`
	ScreenSize  string `json:"screen_size"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Product is a phone offered in the shop.
type Product struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Brand       string        `json:"brand"`
	ImportPrice float64       `json:"import_price,omitempty"`
	RetailPrice float64       `json:"retail_price"`
	Amount      int           `json:"amount"`
	ImageURL    string        `json:"url_image,omitempty"`
	Details     *ProductSpecs `json:"detailsProduct,omitempty"`
}

// Review is a customer rating of a product.
type Review struct {
	ID           string `json:"_id"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"creation_date,omitempty"`
}
