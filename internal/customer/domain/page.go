package domain

// Product is the catalogue snapshot shown on customer pages. It is fetched
// fresh per request and never cached.
type Product struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

// Review mirrors the feedback service's review shape.
type Review struct {
	ID        string `json:"id"`
	ProductID int    `json:"productId"`
	Rating    int    `json:"rating"`
	Text      string `json:"review"`
	AuthorID  string `json:"authorId"`
}

// FavouriteProduct mirrors the feedback service's favourite marker shape.
type FavouriteProduct struct {
	ID        string `json:"id"`
	ProductID int    `json:"productId"`
	UserID    string `json:"userId"`
}

// NewReviewPayload is the user's review form input. On a rejected
// submission it is echoed back unchanged so the form can be re-rendered
// with the input intact.
type NewReviewPayload struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// ProductPage is the model the presenter renders for one product. Payload
// and Errors are set only when a rejected submission is being re-rendered.
type ProductPage struct {
	Product      Product           `json:"product"`
	Reviews      []Review          `json:"reviews"`
	InFavourites bool              `json:"inFavourites"`
	Payload      *NewReviewPayload `json:"payload,omitempty"`
	Errors       []string          `json:"errors,omitempty"`
}

// ProductListPage is the model for the product list and favourites pages.
type ProductListPage struct {
	Filter   string    `json:"filter,omitempty"`
	Products []Product `json:"products"`
}
