package entity

// EventInfo — единственная на всю витрину запись с информацией о событии.
// Создаётся один раз при сидировании и далее только редактируется.
type EventInfo struct {
	PlaceInfo     string `json:"place_info"`
	DressCodeInfo string `json:"dress_code_info"`
}

// Catalog — полная выдача для гостя: подарки плюс информация о событии.
type Catalog struct {
	Gifts         []Gift `json:"gifts"`
	PlaceInfo     string `json:"place_info"`
	DressCodeInfo string `json:"dress_code_info"`
}
